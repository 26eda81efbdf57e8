package main

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/internhunt/internal/api"
	"github.com/nao1215/internhunt/internal/session"
)

// NewSignupCmd creates the signup command.
func NewSignupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a student account",
		Long: `Signup creates a student account and logs in immediately: the backend
issues a session token on successful registration.

The backend requires every profile field at signup. Fields not given as
flags are prompted for interactively.

Examples:
  # Fully interactive signup
  internhunt signup

  # Non-interactive signup
  internhunt signup --username ada --password s3cret \
    --first-name Ada --last-name Lovelace --school "Analytical High" \
    --email ada@example.com --school-email ada@school.example.com \
    --age 17 --grade 11 --extracurriculars "Math club" \
    --interests Computing --gpa 4.0 --courses Calculus

  # Create a school-admin account
  internhunt signup admin --username principal --password s3cret \
    --school "Analytical High" --email admin@school.example.com`,
		RunE: runSignupCmd,
	}

	addClientFlags(cmd)
	cmd.Flags().String("username", "", "Account username")
	cmd.Flags().StringP("password", "p", "", "Password")
	cmd.Flags().String("first-name", "", "First name")
	cmd.Flags().String("last-name", "", "Last name")
	cmd.Flags().String("school", "", "School name")
	cmd.Flags().String("email", "", "Personal email address")
	cmd.Flags().String("school-email", "", "School email address")
	cmd.Flags().String("age", "", "Age")
	cmd.Flags().String("grade", "", "Grade level")
	cmd.Flags().String("extracurriculars", "", "Extracurricular activities (comma separated)")
	cmd.Flags().String("interests", "", "Interests (comma separated)")
	cmd.Flags().String("gpa", "", "GPA")
	cmd.Flags().String("courses", "", "Courses taken (comma separated)")

	cmd.AddCommand(newAdminSignupCmd())

	return cmd
}

// newAdminSignupCmd creates the signup admin subcommand.
func newAdminSignupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Create a school-admin account",
		RunE:  runAdminSignupCmd,
	}

	addClientFlags(cmd)
	cmd.Flags().String("username", "", "Account username")
	cmd.Flags().StringP("password", "p", "", "Password")
	cmd.Flags().String("school", "", "School name")
	cmd.Flags().String("email", "", "Contact email address")

	return cmd
}

// studentSignupFields maps flags to prompts in the order they are asked.
var studentSignupFields = []struct {
	flag   string
	prompt string
}{
	{"username", "Username: "},
	{"password", "Password: "},
	{"first-name", "First name: "},
	{"last-name", "Last name: "},
	{"school", "School: "},
	{"email", "Personal email: "},
	{"school-email", "School email: "},
	{"age", "Age: "},
	{"grade", "Grade: "},
	{"extracurriculars", "Extracurriculars (comma separated): "},
	{"interests", "Interests (comma separated): "},
	{"gpa", "GPA: "},
	{"courses", "Courses (comma separated): "},
}

// runSignupCmd executes the student signup command.
func runSignupCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.Verbose)

	// One reader for the whole prompt sequence; see readLine.
	in := bufio.NewReader(cmd.InOrStdin())

	values := make(map[string]string, len(studentSignupFields))
	for _, field := range studentSignupFields {
		value, err := cmd.Flags().GetString(field.flag)
		if err != nil {
			return err
		}
		if value == "" {
			value, err = readLine(cmd.OutOrStdout(), in, field.prompt)
			if err != nil {
				return err
			}
		}
		if value == "" {
			return fmt.Errorf("%s cannot be empty (the backend requires every field)", field.flag)
		}
		values[field.flag] = value
	}

	payload := api.StudentSignup{
		Username:         values["username"],
		Password:         values["password"],
		FirstName:        values["first-name"],
		LastName:         values["last-name"],
		School:           values["school"],
		EmailPersonal:    values["email"],
		EmailSchool:      values["school-email"],
		Age:              values["age"],
		Grade:            values["grade"],
		Extracurriculars: values["extracurriculars"],
		Interests:        values["interests"],
		GPA:              values["gpa"],
		Courses:          values["courses"],
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	client := newClient(cfg, session.Session{}, logger)
	token, err := client.Signup(ctx, payload)
	if err != nil {
		return fmt.Errorf("signup failed: %w", err)
	}

	store := openStore(cfg)
	if err := store.Save(session.Session{Token: token, Role: session.RoleStudent}); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s! Your account is ready and you are logged in.\n", payload.FirstName)
	fmt.Fprintln(cmd.OutOrStdout(), "Run \"internhunt search\" to browse internships or \"internhunt recommend\" for matches.")
	return nil
}

// runAdminSignupCmd executes the admin signup command.
func runAdminSignupCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.Verbose)

	fields := []struct {
		flag   string
		prompt string
	}{
		{"username", "Username: "},
		{"password", "Password: "},
		{"school", "School name: "},
		{"email", "Contact email: "},
	}

	// One reader for the whole prompt sequence; see readLine.
	in := bufio.NewReader(cmd.InOrStdin())

	values := make(map[string]string, len(fields))
	for _, field := range fields {
		value, err := cmd.Flags().GetString(field.flag)
		if err != nil {
			return err
		}
		if value == "" {
			value, err = readLine(cmd.OutOrStdout(), in, field.prompt)
			if err != nil {
				return err
			}
		}
		if value == "" {
			return errors.New(field.flag + " cannot be empty")
		}
		values[field.flag] = value
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	client := newClient(cfg, session.Session{}, logger)
	token, err := client.AdminSignup(ctx, api.AdminSignup{
		Username:   values["username"],
		Password:   values["password"],
		SchoolName: values["school"],
		Email:      values["email"],
	})
	if err != nil {
		return fmt.Errorf("signup failed: %w", err)
	}

	store := openStore(cfg)
	if err := store.Save(session.Session{Token: token, Role: session.RoleAdmin}); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Admin account for %s is ready and you are logged in.\n", values["school"])
	fmt.Fprintln(cmd.OutOrStdout(), "Run \"internhunt post\" to publish an internship listing.")
	return nil
}
