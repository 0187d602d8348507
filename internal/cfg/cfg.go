package cfg

import (
	"errors"
	"flag"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/linnemanlabs/bfhl/internal/classify"
)

// dobLayout is the DDMMYYYY layout used in user IDs.
const dobLayout = "02012006"

// Config adds app-specific configuration fields to the
// common cfg.Registerable and cfg.Validatable interfaces
type Config struct {
	DrainSeconds          int
	ShutdownBudgetSeconds int
	APIPort               int
	UserFullName          string
	UserDOB               string
	Email                 string
	RollNumber            string
	Charset               string
}

// RegisterFlags binds Config fields to the given FlagSet with defaults inline
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.DrainSeconds, "drain-seconds", 5, "seconds to wait for in-flight requests to drain before shutdown (1..300)")
	fs.IntVar(&c.ShutdownBudgetSeconds, "shutdown-budget-seconds", 15, "total seconds for component shutdown after drain (1..300)")
	fs.IntVar(&c.APIPort, "http-port", 8080, "API listen TCP port (1..65535)")
	fs.StringVar(&c.UserFullName, "user-full-name", "john_doe", "full name used to build user_id, lowercase with underscores")
	fs.StringVar(&c.UserDOB, "user-dob", "17091999", "date of birth used to build user_id (DDMMYYYY)")
	fs.StringVar(&c.Email, "email", "john@xyz.com", "email address reported in responses")
	fs.StringVar(&c.RollNumber, "roll-number", "ABCD123", "roll number reported in responses")
	fs.StringVar(&c.Charset, "charset", "ascii", "character categories for classification (ascii or unicode)")
}

// UserID returns the reported user_id, <full name>_<DDMMYYYY>.
func (c *Config) UserID() string {
	return c.UserFullName + "_" + c.UserDOB
}

// Validate checks all configuration fields for correctness.
// It returns an error if any field is invalid, or nil if all fields are valid.
func (c *Config) Validate() error {
	var errs []error

	// Drain and shutdown budgets
	if c.DrainSeconds <= 0 || c.DrainSeconds > 300 {
		errs = append(errs, fmt.Errorf("invalid DRAIN_SECONDS %d (must be 1..300)", c.DrainSeconds))
	}
	if c.ShutdownBudgetSeconds <= 0 || c.ShutdownBudgetSeconds > 300 {
		errs = append(errs, fmt.Errorf("invalid SHUTDOWN_BUDGET_SECONDS %d (must be 1..300)", c.ShutdownBudgetSeconds))
	}

	// Shutdown budget must be greater than drain time
	if c.ShutdownBudgetSeconds <= c.DrainSeconds {
		errs = append(errs, fmt.Errorf("SHUTDOWN_BUDGET_SECONDS %d must be greater than DRAIN_SECONDS %d", c.ShutdownBudgetSeconds, c.DrainSeconds))
	}

	// API port must be valid TCP port number
	if c.APIPort <= 0 || c.APIPort > 65535 {
		errs = append(errs, fmt.Errorf("invalid HTTP_PORT %d (must be 1..65535)", c.APIPort))
	}

	// Identity fields are echoed on every response
	if c.UserFullName == "" {
		errs = append(errs, errors.New("USER_FULL_NAME is required"))
	} else if strings.ContainsFunc(c.UserFullName, func(r rune) bool { return r == ' ' || r == '\t' }) {
		errs = append(errs, fmt.Errorf("invalid USER_FULL_NAME %q (use underscores, not spaces)", c.UserFullName))
	}
	if _, err := time.Parse(dobLayout, c.UserDOB); err != nil || len(c.UserDOB) != len(dobLayout) {
		errs = append(errs, fmt.Errorf("invalid USER_DOB %q (must be DDMMYYYY)", c.UserDOB))
	}
	if c.Email == "" {
		errs = append(errs, errors.New("EMAIL is required"))
	} else if _, err := mail.ParseAddress(c.Email); err != nil {
		errs = append(errs, fmt.Errorf("invalid EMAIL %q: %w", c.Email, err))
	}
	if c.RollNumber == "" {
		errs = append(errs, errors.New("ROLL_NUMBER is required"))
	}

	if _, err := classify.ParseCharset(c.Charset); err != nil {
		errs = append(errs, fmt.Errorf("invalid CHARSET: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
