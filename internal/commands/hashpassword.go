package commands

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/klabast/ledig-bane/internal/app"
	"github.com/klabast/ledig-bane/internal/config"
	"golang.org/x/term"
)

// HashPassword handles the hash-password subcommand
func HashPassword(args []string, cfg *config.Config) {
	fs := flag.NewFlagSet("hash-password", flag.ExitOnError)
	overwrite := fs.Bool("overwrite", false, "Overwrite existing auth file without asking")
	insecureUnmask := fs.Bool("insecure-unmask-password", false, "Show password as plain text (INSECURE!)")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ledig-bane hash-password [OPTIONS]\n\n")
		fmt.Fprintf(os.Stderr, "Creates an auth.secret file with hashed password (Argon2id) for the admin routes.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  AUTH_FILE    Path to auth file (default: auth.secret next to the binary)\n")
	}
	_ = fs.Parse(args)

	authFile, err := app.AuthFilePath(cfg.AuthFile)
	if err != nil {
		fail("Error: %v\n", err)
	}

	fmt.Print("Enter username: ")
	var username string
	if _, err := fmt.Scanln(&username); err != nil {
		fail("Error reading username: %v\n", err)
	}
	if username == "" {
		fail("Username cannot be empty\n")
	}

	var password, passwordConfirm string
	if *insecureUnmask {
		fmt.Fprintf(os.Stderr, "⚠️  WARNING: Password will be visible on screen!\n")
		fmt.Print("Enter password:   ")
		if _, err := fmt.Scanln(&password); err != nil {
			fail("Error reading password: %v\n", err)
		}
		fmt.Print("Confirm password: ")
		if _, err := fmt.Scanln(&passwordConfirm); err != nil {
			fail("Error reading password confirmation: %v\n", err)
		}
	} else {
		password = readPasswordWithMask("Enter password:   ")
		passwordConfirm = readPasswordWithMask("Confirm password: ")
	}

	if password == "" {
		fail("Password cannot be empty\n")
	}
	if password != passwordConfirm {
		fail("Passwords do not match\n")
	}

	err = app.CreateAuthFile(authFile, username, password, *overwrite)
	if errors.Is(err, app.ErrAuthFileExists) {
		if !confirm(fmt.Sprintf("Auth file %s already exists. Overwrite? [y/N]: ", authFile)) {
			fmt.Println("Aborted.")
			return
		}
		err = app.CreateAuthFile(authFile, username, password, true)
	}
	if err != nil {
		fail("Error: %v\n", err)
	}

	fmt.Printf("✓ Auth file created: %s\n", authFile)
	fmt.Printf("  Username: %s\n", username)
	fmt.Println("  Start the server with -admin to enable the admin routes.")
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

// confirm asks a yes/no question on stdin; anything but y/yes is no
func confirm(prompt string) bool {
	fmt.Print(prompt)
	answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// readPasswordWithMask reads password input and displays asterisks
func readPasswordWithMask(prompt string) string {
	fmt.Print(prompt)
	fd := int(syscall.Stdin)

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		// Not a terminal: fall back to hidden input
		password, _ := term.ReadPassword(fd)
		fmt.Println()
		return string(password)
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	var password []rune
	reader := bufio.NewReader(os.Stdin)

	for {
		char, _, err := reader.ReadRune()
		if err != nil {
			break
		}

		switch char {
		case '\n', '\r': // Enter key
			fmt.Print("\r\n")
			return string(password)
		case 127, 8: // Backspace or Delete
			if len(password) > 0 {
				password = password[:len(password)-1]
				fmt.Print("\b \b")
			}
		case 3: // Ctrl+C
			_ = term.Restore(fd, oldState)
			fmt.Println()
			os.Exit(1)
		default:
			if char >= 32 && char != 127 {
				password = append(password, char)
				fmt.Print("*")
			}
		}
	}

	fmt.Print("\r\n")
	return string(password)
}
