package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/edmundmulligan/witchcraft-and-wizardy.school/cmd"
	"github.com/edmundmulligan/witchcraft-and-wizardy.school/internal/profile"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "save":
		runSave(ctx, os.Args[2:])
	case "show":
		runShow(ctx, os.Args[2:])
	case "ls":
		runList(os.Args[2:])
	case "clear":
		runClear(os.Args[2:])
	case "switch":
		runSwitch(os.Args[2:])
	case "current":
		runCurrent(os.Args[2:])
	case "diff":
		runDiff(ctx, os.Args[2:])
	case "help", "-h", "--help":
		if len(os.Args) <= 2 {
			printUsage()
			return
		}
		printCommandHelp(os.Args[2])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func storeFlags(fs *flag.FlagSet) *cmd.StoreOptions {
	opts := &cmd.StoreOptions{}
	fs.StringVar(&opts.Backend, "store", "bolt", "Storage backend: bolt, sqlite or keyring")
	fs.StringVar(&opts.Path, "db", "", "Database path (file-backed backends)")
	fs.BoolVar(&opts.AskPass, "ask-pass", false, "Prompt for a passphrase instead of the built-in one")
	return opts
}

func runSave(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("save", flag.ExitOnError)
	opts := storeFlags(fs)
	var rec profile.Record
	fs.StringVar(&rec.Name, "name", "", "Student name")
	fs.StringVar(&rec.Avatar, "avatar", "", "Avatar choice")
	fs.StringVar(&rec.Age, "age", "", "Age choice")
	fs.StringVar(&rec.Gender, "gender", "", "Gender choice")
	fs.StringVar(&rec.Theme, "theme", "", "Theme choice")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	cmd.Save(ctx, *opts, fs.Arg(0), rec)
}

func runShow(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	opts := storeFlags(fs)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	cmd.Show(ctx, *opts, fs.Arg(0))
}

func runList(args []string) {
	fs := flag.NewFlagSet("ls", flag.ExitOnError)
	opts := storeFlags(fs)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	cmd.List(*opts)
}

func runClear(args []string) {
	fs := flag.NewFlagSet("clear", flag.ExitOnError)
	opts := storeFlags(fs)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	cmd.Clear(*opts, fs.Arg(0))
}

func runSwitch(args []string) {
	fs := flag.NewFlagSet("switch", flag.ExitOnError)
	opts := storeFlags(fs)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: profiles switch <identifier>")
		os.Exit(1)
	}

	cmd.Switch(*opts, fs.Arg(0))
}

func runCurrent(args []string) {
	fs := flag.NewFlagSet("current", flag.ExitOnError)
	opts := storeFlags(fs)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	cmd.Current(*opts)
}

func runDiff(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("diff", flag.ExitOnError)
	opts := storeFlags(fs)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Usage: profiles diff <identifier> <identifier>")
		os.Exit(1)
	}

	cmd.Diff(ctx, *opts, fs.Arg(0), fs.Arg(1))
}

func printUsage() {
	fmt.Println("profiles - Encrypted student profile store for the school kiosk")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  profiles <command> [flags] [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  save      Encrypt and store a profile record")
	fmt.Println("  show      Decrypt and print a stored profile")
	fmt.Println("  ls        List stored profiles")
	fmt.Println("  clear     Remove a stored profile")
	fmt.Println("  switch    Make a profile the active one")
	fmt.Println("  current   Print the active profile identifier")
	fmt.Println("  diff      Compare two stored profiles")
	fmt.Println("  help      Show help for a command")
	fmt.Println()
	fmt.Println("Common flags:")
	fmt.Println("  --store     bolt (default), sqlite or keyring")
	fmt.Println("  --db        Database path for file-backed backends")
	fmt.Println("  --ask-pass  Prompt for a passphrase instead of the built-in one")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  profiles save --name Rowan --avatar witch --age 11 --theme dark")
	fmt.Println("  profiles show rowan")
	fmt.Println("  profiles switch mentor")
	fmt.Println("  profiles clear")
	fmt.Println()
	fmt.Println("Use 'profiles help <command>' for more information about a command.")
}

func printCommandHelp(command string) {
	switch command {
	case "save":
		fmt.Println("profiles save [flags] [<identifier>]")
		fmt.Println()
		fmt.Println("Encrypts and stores a profile record, replacing any previous record")
		fmt.Println("for the identifier, and makes it the active profile. The identifier")
		fmt.Println("defaults to the --name value; both are case-insensitive and an empty")
		fmt.Println("name stores under 'student'.")
		fmt.Println()
		fmt.Println("Flags:")
		fmt.Println("  --name      Student name (free text)")
		fmt.Println("  --avatar    Avatar choice")
		fmt.Println("  --age       Age choice")
		fmt.Println("  --gender    Gender choice")
		fmt.Println("  --theme     Theme choice")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  profiles save --name Rowan --avatar witch --age 11 --theme dark")
		fmt.Println("  profiles save --name Rowan rowan-the-second")
	case "show":
		fmt.Println("profiles show [<identifier>]")
		fmt.Println()
		fmt.Println("Decrypts and prints the stored record for the identifier, or for the")
		fmt.Println("active profile when none is given. Prints 'no profile data' for a")
		fmt.Println("missing, corrupted or tampered entry.")
	case "ls":
		fmt.Println("profiles ls")
		fmt.Println()
		fmt.Println("Lists stored profile identifiers. The active profile is marked *.")
	case "clear":
		fmt.Println("profiles clear [<identifier>]")
		fmt.Println()
		fmt.Println("Removes the stored record for the identifier. With no identifier it")
		fmt.Println("clears the active profile and forgets which profile was active.")
	case "switch":
		fmt.Println("profiles switch <identifier>")
		fmt.Println()
		fmt.Println("Makes the identifier the active profile without loading its data.")
		fmt.Println("Switching to a profile that has no stored record is allowed; loading")
		fmt.Println("it simply reports no data.")
	case "current":
		fmt.Println("profiles current")
		fmt.Println()
		fmt.Println("Prints the identifier of the active profile.")
	case "diff":
		fmt.Println("profiles diff <identifier> <identifier>")
		fmt.Println()
		fmt.Println("Decrypts two stored profiles and prints their differences.")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
	}
}
