package cli

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/maruel/memberstore/internal/errors"
	"github.com/maruel/memberstore/internal/models"
)

// maskedPassword replaces passwords in output unless asked otherwise.
const maskedPassword = "***"

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{Status: "ok", Data: data})
	}
	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// Error outputs err in the configured format.
func (f *OutputFormatter) Error(err error) error {
	code := string(errors.CodeOf(err))
	if code == "" {
		code = "ERROR"
	}
	var details map[string]any
	var c errors.ErrorWithCode
	if stderrors.As(err, &c) && len(c.Details()) != 0 {
		details = c.Details()
	}
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: code, Message: err.Error(), Details: details},
		})
	}
	_, werr := fmt.Fprintf(f.Writer, "error [%s]: %s\n", code, err)
	return werr
}

// memberView is the printable form of a member.
type memberView struct {
	ID         int64             `json:"id"`
	Password   string            `json:"password,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

func newMemberView(m *models.Member, showPassword bool) memberView {
	v := memberView{ID: m.ID, Password: m.Password, Attributes: m.Attributes}
	if !showPassword && v.Password != "" {
		v.Password = maskedPassword
	}
	return v
}

func (v memberView) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d", v.ID)
	if v.Password != "" {
		fmt.Fprintf(&b, " password=%s", v.Password)
	}
	for _, k := range slices.Sorted(maps.Keys(v.Attributes)) {
		fmt.Fprintf(&b, " %s=%s", k, v.Attributes[k])
	}
	return b.String()
}

// memberList is the printable form of a list of members.
type memberList []memberView

func newMemberList(members iter.Seq[*models.Member], showPasswords bool) memberList {
	out := memberList{}
	for m := range members {
		out = append(out, newMemberView(m, showPasswords))
	}
	return out
}

func (l memberList) String() string {
	if len(l) == 0 {
		return "no members"
	}
	lines := make([]string, len(l))
	for i, v := range l {
		lines[i] = v.String()
	}
	return strings.Join(lines, "\n")
}

// lookupView is the printable form of a single-member lookup.
type lookupView struct {
	ID     int64       `json:"id"`
	Found  bool        `json:"found"`
	Member *memberView `json:"member,omitempty"`
}

func (l lookupView) String() string {
	if !l.Found {
		return fmt.Sprintf("member %d not found", l.ID)
	}
	return l.Member.String()
}
