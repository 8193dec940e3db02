package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/blueprint/content"
	"github.com/lixenwraith/blueprint/logging"
)

var contentSvc *content.Service

func init() {
	// Runs after failed commands too, where post-run hooks are skipped
	cobra.OnFinalize(closeContent)
}

func closeContent() {
	if contentSvc == nil {
		return
	}
	if err := contentSvc.Stop(); err != nil && logger != nil {
		logger.Warn("failed to close content store", zap.Error(err))
	}
	contentSvc = nil
}

func newContentCmd() *cobra.Command {
	var (
		contentDB string
		contactIn content.ContactSubmission
		subEmail  string
		subName   string
		seedFile  string
	)

	contentCmd := &cobra.Command{
		Use:   "content",
		Short: "Query and update portfolio content",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Root().PersistentPreRunE(cmd, args); err != nil {
				return err
			}
			var err error
			logger, err = logging.Console(cfg.Log.Debug)
			if err != nil {
				return err
			}
			path := cfg.Content.DBPath
			if contentDB != "" {
				path = contentDB
			}
			contentSvc = content.NewService(path, "", logger)
			return contentSvc.Init(cmd.Context())
		},
	}
	contentCmd.PersistentFlags().StringVar(&contentDB, "db", "", "Content database path (overrides config)")

	var featuredProjects, featuredTestimonials bool

	projectsCmd := &cobra.Command{
		Use:   "projects",
		Short: "List published projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd.OutOrStdout(), contentSvc.Projects(cmd.Context(), featuredProjects))
		},
	}
	projectsCmd.Flags().BoolVar(&featuredProjects, "featured", false, "Only featured projects")

	testimonialsCmd := &cobra.Command{
		Use:   "testimonials",
		Short: "List published testimonials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd.OutOrStdout(), contentSvc.Testimonials(cmd.Context(), featuredTestimonials))
		},
	}
	testimonialsCmd.Flags().BoolVar(&featuredTestimonials, "featured", false, "Only featured testimonials")

	contactCmd := &cobra.Command{
		Use:   "contact",
		Short: "Submit a contact form entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := contentSvc.SubmitContact(cmd.Context(), contactIn)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	contactCmd.Flags().StringVar(&contactIn.Name, "name", "", "Sender name (required)")
	contactCmd.Flags().StringVar(&contactIn.Email, "email", "", "Sender email (required)")
	contactCmd.Flags().StringVar(&contactIn.Message, "message", "", "Message body (required)")
	contactCmd.Flags().StringVar(&contactIn.Subject, "subject", "", "Subject")
	contactCmd.Flags().StringVar(&contactIn.Phone, "phone", "", "Phone")
	contactCmd.Flags().StringVar(&contactIn.Company, "company", "", "Company")
	for _, name := range []string{"name", "email", "message"} {
		_ = contactCmd.MarkFlagRequired(name)
	}

	subscribeCmd := &cobra.Command{
		Use:   "subscribe",
		Short: "Subscribe an email to the newsletter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sub, err := contentSvc.Subscribe(cmd.Context(), subEmail, subName)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), sub)
		},
	}
	subscribeCmd.Flags().StringVar(&subEmail, "email", "", "Subscriber email (required)")
	subscribeCmd.Flags().StringVar(&subName, "name", "", "Subscriber name")
	_ = subscribeCmd.MarkFlagRequired("email")

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load projects and testimonials from a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := seedFile
			if path == "" {
				path = cfg.Content.SeedPath
			}
			return seedContent(cmd.Context(), cmd.OutOrStdout(), path)
		},
	}
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "Seed YAML file (defaults to content.seed_path)")

	contentCmd.AddCommand(projectsCmd, testimonialsCmd, contactCmd, subscribeCmd, seedCmd)
	return contentCmd
}

func seedContent(ctx context.Context, w io.Writer, path string) error {
	seed, err := content.LoadSeedFile(path)
	if err != nil {
		return err
	}
	if err := contentSvc.Store().Seed(ctx, seed); err != nil {
		return err
	}
	return printJSON(w, map[string]int{
		"projects":     len(seed.Projects),
		"testimonials": len(seed.Testimonials),
	})
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
