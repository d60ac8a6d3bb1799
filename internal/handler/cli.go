package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/lokalise/lokalise-mcp/internal/apperr"
	"github.com/lokalise/lokalise-mcp/internal/ui"
)

// ConfirmFlag is the flag destructive commands require.
const ConfirmFlag = "confirm"

// RunFunc produces the Markdown result of one CLI command.
type RunFunc func(ctx context.Context) (string, error)

// Run executes fn and prints its result. Markdown goes to stdout; an error
// is printed to stderr with a tip and returned so the process exits 1.
//
// Parameters:
//   - cmd: The running cobra command
//   - fn: The controller call
//
// Returns:
//   - error: fn's error, already reported to the user
func Run(cmd *cobra.Command, fn RunFunc) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	md, err := fn(ctx)
	if err != nil {
		Report(err)
		return reportedError{err}
	}
	ui.PrintMarkdown(md)
	return nil
}

// RunDestructive is Run for commands that need --confirm. Without it the
// command fails before fn is called.
func RunDestructive(cmd *cobra.Command, action string, fn RunFunc) error {
	if err := Confirmed(cmd, action); err != nil {
		Report(err)
		return reportedError{err}
	}
	return Run(cmd, fn)
}

// reportedError marks an error Report already printed.
type reportedError struct{ error }

func (e reportedError) Unwrap() error { return e.error }

// Reported reports whether err was already printed by Run.
func Reported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}

// Report prints err and its tip to stderr.
func Report(err error) {
	ui.PrintError("%s", err.Error())
	ui.PrintTip(apperr.Tip(err))
}

// RequireConfirm adds the --confirm flag to a destructive command.
func RequireConfirm(cmd *cobra.Command) {
	cmd.Flags().Bool(ConfirmFlag, false, "Confirm this destructive operation")
}

// Confirmed returns a validation error unless --confirm was passed.
// Commands call it before touching the network.
//
// Parameters:
//   - cmd: The running cobra command
//   - action: What the command is about to do, e.g. "delete 3 keys"
//
// Returns:
//   - error: nil when confirmed
func Confirmed(cmd *cobra.Command, action string) error {
	ok, _ := cmd.Flags().GetBool(ConfirmFlag)
	if ok {
		return nil
	}
	err := apperr.Validation("refusing to %s without --confirm", action)
	return apperr.WithHint(err, "This cannot be undone. Re-run with --confirm to proceed.")
}

// OptionalBool returns the flag's value when the user set it, nil otherwise.
func OptionalBool(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		return nil
	}
	return &v
}

// OptionalInt returns the flag's value when the user set it, nil otherwise.
func OptionalInt(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetInt(name)
	if err != nil {
		return nil
	}
	return &v
}

// OptionalString returns the flag's value when the user set it, nil otherwise.
func OptionalString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil
	}
	return &v
}

// stdin is replaced in tests.
var stdin io.Reader = os.Stdin

// DecodeJSON decodes a JSON flag value into v. The value is either literal
// JSON, "@path" to read a file, or "-" to read stdin.
//
// Parameters:
//   - flag: The flag name, used in error messages
//   - value: The raw flag value
//   - v: Destination
//
// Returns:
//   - error: A validation error when the input is not valid JSON for v
func DecodeJSON(flag, value string, v any) error {
	data, err := readJSONInput(value)
	if err != nil {
		return apperr.Validation("--%s: %v", flag, err)
	}
	if !gjson.ValidBytes(data) {
		return apperr.Validation("--%s must be valid JSON", flag)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return apperr.Validation("--%s: %v", flag, err)
	}
	return nil
}

func readJSONInput(value string) ([]byte, error) {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		return nil, io.ErrUnexpectedEOF
	case value == "-":
		return io.ReadAll(stdin)
	case strings.HasPrefix(value, "@"):
		return os.ReadFile(value[1:])
	default:
		return []byte(value), nil
	}
}
