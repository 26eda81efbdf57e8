package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/internhunt/internal/model"
	"github.com/nao1215/internhunt/internal/render"
)

// NewProfileCmd creates the profile command.
func NewProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit your student profile",
		Long: `Profile shows the logged-in student's profile. The profile feeds the
recommendation engine: the more complete it is, the better the matches.

Examples:
  # Show your profile
  internhunt profile

  # Export your profile as JSON
  internhunt profile --json

  # Update individual fields
  internhunt profile edit --interests "Robotics, Biology" --gpa 3.8`,
		RunE: runProfileShowCmd,
	}

	addClientFlags(cmd)
	addOutputFlags(cmd)

	cmd.AddCommand(newProfileEditCmd())

	return cmd
}

// profileEditFlags maps edit flags to profile field setters.
var profileEditFlags = []struct {
	flag string
	set  func(p *model.Profile, value string)
}{
	{"first-name", func(p *model.Profile, v string) { p.FirstName = v }},
	{"last-name", func(p *model.Profile, v string) { p.LastName = v }},
	{"school", func(p *model.Profile, v string) { p.School = v }},
	{"email", func(p *model.Profile, v string) { p.EmailPersonal = v }},
	{"age", func(p *model.Profile, v string) { p.Age = v }},
	{"grade", func(p *model.Profile, v string) { p.Grade = v }},
	{"extracurriculars", func(p *model.Profile, v string) { p.Extracurriculars = v }},
	{"interests", func(p *model.Profile, v string) { p.Interests = v }},
	{"gpa", func(p *model.Profile, v string) { p.GPA = v }},
	{"courses", func(p *model.Profile, v string) { p.Courses = v }},
}

// newProfileEditCmd creates the profile edit subcommand.
func newProfileEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Update profile fields",
		Long: `Edit fetches the current profile, applies the given flags on top, and
sends the merged profile back. Fields without a flag keep their current
value; pass an empty string to clear a field explicitly.`,
		RunE: runProfileEditCmd,
	}

	addClientFlags(cmd)
	cmd.Flags().String("first-name", "", "First name")
	cmd.Flags().String("last-name", "", "Last name")
	cmd.Flags().String("school", "", "School name")
	cmd.Flags().String("email", "", "Personal email address")
	cmd.Flags().String("age", "", "Age")
	cmd.Flags().String("grade", "", "Grade level")
	cmd.Flags().String("extracurriculars", "", "Extracurricular activities (comma separated)")
	cmd.Flags().String("interests", "", "Interests (comma separated)")
	cmd.Flags().String("gpa", "", "GPA")
	cmd.Flags().String("courses", "", "Courses taken (comma separated)")

	return cmd
}

// runProfileShowCmd executes the profile command.
func runProfileShowCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.Verbose)

	store := openStore(cfg)
	sess, err := requireSession(store)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	client := newClient(cfg, sess, logger)
	profile, err := client.Profile(ctx)
	if err != nil {
		return describeAuthError(store, err)
	}

	writer, closeOutput, err := newWriter(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closeOutput() //nolint:errcheck // double close is harmless

	if _, err := writer.WriteProfile(&profile); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return closeOutput()
}

// runProfileEditCmd executes the profile edit command.
func runProfileEditCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.Verbose)

	store := openStore(cfg)
	sess, err := requireSession(store)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	client := newClient(cfg, sess, logger)

	// Merge flags over the current profile so unspecified fields survive.
	profile, err := client.Profile(ctx)
	if err != nil {
		return describeAuthError(store, err)
	}

	changed := false
	for _, field := range profileEditFlags {
		if !cmd.Flags().Changed(field.flag) {
			continue
		}
		value, err := cmd.Flags().GetString(field.flag)
		if err != nil {
			return err
		}
		field.set(&profile, value)
		changed = true
	}
	if !changed {
		return fmt.Errorf("nothing to update (see \"internhunt profile edit --help\" for fields)")
	}

	if err := client.UpdateProfile(ctx, profile); err != nil {
		return describeAuthError(store, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Profile updated.")

	// Re-fetch so the summary reflects what the server actually stored.
	saved, err := client.Profile(ctx)
	if err != nil {
		logger.Warn("failed to re-fetch profile after update", "error", err)
		saved = profile
	}
	if _, err := render.NewSimpleWriter(cmd.OutOrStdout()).WriteProfile(&saved); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}
