package main

import (
	"fmt"
	"io"
)

// DoctorCommand runs every check in sequence
type DoctorCommand struct {
	out io.Writer
}

func (c *DoctorCommand) Name() string {
	return "doctor"
}

func (c *DoctorCommand) Description() string {
	return "Diagnose configuration and server issues (validate + health-check)"
}

func (c *DoctorCommand) Run(args []string) error {
	PrintHeader(c.out, "Running Doctor...")

	hasError := false

	validate := &ValidateCommand{out: c.out}
	if err := validate.Run(nil); err != nil {
		PrintError(c.out, "Configuration check failed: %v", err)
		hasError = true
	}

	health := &HealthCheckCommand{out: c.out}
	if err := health.Run(args); err != nil {
		PrintError(c.out, "Server check failed: %v", err)
		hasError = true
	}

	if hasError {
		return fmt.Errorf("doctor found issues")
	}

	PrintSuccess(c.out, "All systems operational!")
	return nil
}
