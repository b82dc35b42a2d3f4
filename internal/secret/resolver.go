package secret

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// PasswordPrompt reads a masked password. It is a function field so tests
// can script the entry instead of owning a terminal.
type PasswordPrompt func(label string) (string, error)

// TerminalPrompt reads a masked password from the controlling terminal.
func TerminalPrompt(label string) (string, error) {
	fmt.Fprintf(os.Stderr, "%s: ", label)
	entered, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(entered), nil
}

// Resolver obtains the password for one (address, username) pair. Resolution
// order: an explicitly supplied password, then the credential vault, then an
// interactive masked prompt with confirmation. Whatever wins is reconciled
// back into the vault. A broken vault is never fatal; it only costs the
// operator a prompt.
type Resolver struct {
	Store   Store
	Prompt  PasswordPrompt
	In      *bufio.Reader
	Out     io.Writer
	Verbose bool
}

// Resolve returns the password to use for address/username. supplied, when
// non-empty, wins but is still written through to the vault.
func (r *Resolver) Resolve(address, username, supplied string) (string, error) {
	password := supplied

	if password == "" {
		if r.Verbose {
			fmt.Fprintln(r.Out, "Looking for password in the OS credential manager")
		}
		stored, err := r.Store.Get(address, username)
		switch {
		case err == nil:
			if r.Verbose {
				fmt.Fprintln(r.Out, "Password found.")
			}
			password = stored
		case errors.Is(err, ErrNotFound):
			if r.Verbose {
				fmt.Fprintln(r.Out, "Password not found.")
			}
		default:
			if r.Verbose {
				fmt.Fprintf(r.Out, "Credential manager unavailable: %v\n", err)
			}
		}
	}

	if password == "" {
		entered, err := r.promptTwice()
		if err != nil {
			return "", err
		}
		password = entered
	}

	r.persist(address, username, password)
	return password, nil
}

func (r *Resolver) promptTwice() (string, error) {
	for {
		first, err := r.Prompt("password")
		if err != nil {
			return "", err
		}
		again, err := r.Prompt("repeat for confirmation")
		if err != nil {
			return "", err
		}
		if first == again {
			return first, nil
		}
		fmt.Fprintln(r.Out, "Passwords do not match, try again.")
	}
}

// persist reconciles password with the vault. A fresh pair is saved with a
// notice; a mismatch against an existing entry warns and asks before
// overwriting (default answer yes). No mismatch means no prompt.
func (r *Resolver) persist(address, username, password string) {
	stored, err := r.Store.Get(address, username)
	if errors.Is(err, ErrNotFound) {
		if err := r.Store.Set(address, username, password); err == nil {
			fmt.Fprintf(r.Out, "Credentials for %s @ %s saved to the OS credential manager. You can remove or update them there anytime.\n", username, address)
		}
		return
	}
	if err != nil || stored == password {
		return
	}

	color.New(color.FgYellow).Fprintf(r.Out, "Password for %s @ %s already exists in the OS credential manager and differs from the one provided!\n", username, address)
	if r.confirm("Do you want to update the stored password? (yes): ") {
		if err := r.Store.Set(address, username, password); err == nil {
			fmt.Fprintln(r.Out, "Stored password updated.")
		}
	}
}

func (r *Resolver) confirm(question string) bool {
	fmt.Fprint(r.Out, question)
	answer, _ := r.In.ReadString('\n')
	answer = strings.TrimSpace(answer)
	return answer == "" || strings.EqualFold(answer, "yes") || strings.EqualFold(answer, "y")
}
