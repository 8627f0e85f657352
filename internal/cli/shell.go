package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/maruel/ksid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/maruel/memberstore/internal/errors"
	"github.com/maruel/memberstore/internal/models"
	"github.com/maruel/memberstore/internal/seed"
	"github.com/maruel/memberstore/internal/storage"
)

const shellHelp = `commands:
  list                             list members
  get ID                           print one member
  put ID PASSWORD [key=value...]   insert a new member
  add PASSWORD [key=value...]      insert a new member with a generated id
  update ID PASSWORD [key=value...] replace a member
  hash ID PASSWORD                 replace a member's password with its bcrypt hash
  check ID PASSWORD                verify a password
  reset                            re-hydrate from the seed file, or empty the store
  help                             print this help
  quit                             exit`

// NewShellCommand creates the shell command.
func NewShellCommand(rootOpts *RootOptions) *cobra.Command {
	var showPasswords bool
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Read store commands from stdin",
		Long: `Start a line-oriented shell over the store. The store lives for as long as
the shell runs; type "help" for the list of commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sh := &shell{
				opts:          rootOpts,
				out:           rootOpts.formatter(cmd),
				showPasswords: showPasswords,
			}
			if f, ok := cmd.InOrStdin().(*os.File); ok && isatty.IsTerminal(f.Fd()) {
				sh.prompt = "> "
			}
			return sh.run(cmd.Context(), cmd.InOrStdin())
		},
	}
	cmd.Flags().BoolVar(&showPasswords, "show-passwords", false, "print passwords instead of masking them")
	return cmd
}

type shell struct {
	opts          *RootOptions
	out           *OutputFormatter
	prompt        string
	showPasswords bool
}

func (sh *shell) run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		if sh.prompt != "" {
			_, _ = io.WriteString(sh.out.Writer, sh.prompt)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}
		if err := sh.exec(ctx, fields[0], fields[1:]); err != nil {
			if err := sh.out.Error(err); err != nil {
				return err
			}
		}
	}
}

func (sh *shell) exec(ctx context.Context, name string, args []string) error {
	s := sh.opts.Store
	switch name {
	case "help":
		_, err := fmt.Fprintln(sh.out.Writer, shellHelp)
		return err
	case "list":
		return sh.out.Success(newMemberList(s.All(), sh.showPasswords))
	case "get":
		if len(args) != 1 {
			return fmt.Errorf("usage: get ID")
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		res, err := s.Member(id)
		if err != nil {
			return err
		}
		view := lookupView{ID: id, Found: res.Found}
		if res.Found {
			v := newMemberView(res.Member, sh.showPasswords)
			view.Member = &v
		}
		return sh.out.Success(view)
	case "put", "update":
		if len(args) < 2 {
			return fmt.Errorf("usage: %s ID PASSWORD [key=value...]", name)
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		m, err := newMember(id, args[1], args[2:])
		if err != nil {
			return err
		}
		if name == "put" {
			err = s.PutMember(m)
		} else {
			err = s.UpdateMember(m)
		}
		if err != nil {
			return err
		}
		return sh.out.Success(newMemberView(m, sh.showPasswords))
	case "add":
		if len(args) < 1 {
			return fmt.Errorf("usage: add PASSWORD [key=value...]")
		}
		m, err := newMember(int64(ksid.NewID()), args[0], args[1:])
		if err != nil {
			return err
		}
		if err := s.PutMember(m); err != nil {
			return err
		}
		return sh.out.Success(newMemberView(m, sh.showPasswords))
	case "hash":
		if len(args) != 2 {
			return fmt.Errorf("usage: hash ID PASSWORD")
		}
		return sh.hash(args[0], args[1])
	case "check":
		if len(args) != 2 {
			return fmt.Errorf("usage: check ID PASSWORD")
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		m, err := storage.Authenticate(s, id, args[1])
		if err != nil {
			return err
		}
		return sh.out.Success(newMemberView(m, false))
	case "reset":
		if sh.opts.Seed != "" {
			if err := seed.Hydrate(ctx, s, sh.opts.Seed); err != nil {
				return err
			}
		} else if err := s.SetMembers(nil); err != nil {
			return err
		}
		return sh.out.Success(newMemberList(s.All(), sh.showPasswords))
	default:
		return fmt.Errorf("unknown command %q; type help", name)
	}
}

func (sh *shell) hash(idArg, password string) error {
	s := sh.opts.Store
	id, err := parseID(idArg)
	if err != nil {
		return err
	}
	res, err := s.Member(id)
	if err != nil {
		return err
	}
	if !res.Found {
		return errors.NotFound(id)
	}
	h, err := models.HashPassword(password)
	if err != nil {
		return err
	}
	m := res.Member
	m.Password = h
	if err := s.UpdateMember(m); err != nil {
		return err
	}
	return sh.out.Success(newMemberView(m, false))
}

// newMember builds a member from shell arguments.
func newMember(id int64, password string, attrs []string) (*models.Member, error) {
	m := &models.Member{ID: id, Password: password}
	for _, kv := range attrs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid attribute %q: want key=value", kv)
		}
		if m.Attributes == nil {
			m.Attributes = map[string]string{}
		}
		m.Attributes[k] = v
	}
	return m, nil
}
