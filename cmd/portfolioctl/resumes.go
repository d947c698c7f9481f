package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"portfolio-backend/internal/client"
	"portfolio-backend/internal/payload"
)

func resumesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resumes",
		Short: "Manage uploaded resumes",
	}
	cmd.AddCommand(resumesListCmd(), resumesUploadCmd(), resumesActivateCmd(), resumesDeleteCmd(), resumesDownloadCmd())
	return cmd
}

func resumesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List resumes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api := client.New(serverURL)
			items, err := api.ListResumes(cmd.Context())
			if err != nil {
				return err
			}
			printResumes(cmd, items)
			return nil
		},
	}
}

func resumesUploadCmd() *cobra.Command {
	var activate bool
	cmd := &cobra.Command{
		Use:   "upload <file.pdf>",
		Short: "Encode and upload a resume PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			// The encode settles off the command goroutine; non-PDF picks
			// fail here before the server is ever contacted.
			task := payload.StartEncode(cmd.Context(), path)
			result := task.Wait(cmd.Context())
			if result.Err != nil {
				if errors.Is(result.Err, payload.ErrInvalidType) {
					return fmt.Errorf("%s: only PDF files can be uploaded", path)
				}
				return fmt.Errorf("encode %s: %w", path, result.Err)
			}

			api := client.New(serverURL)
			res, err := api.UploadResume(cmd.Context(), result.FileName, result.Text, activate)
			if err != nil {
				return fmt.Errorf("upload %s failed, nothing was saved: %w", result.FileName, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %s (%s)\n", res.FileName, res.ID)

			items, err := api.ListResumes(cmd.Context())
			if err != nil {
				return err
			}
			printResumes(cmd, items)
			return nil
		},
	}
	cmd.Flags().BoolVar(&activate, "activate", false, "make the uploaded resume the active one")
	return cmd
}

func resumesActivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activate <id>",
		Short: "Mark a resume as the single active one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api := client.New(serverURL)
			res, err := api.ActivateResume(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Active resume is now %s (%s)\n", res.FileName, res.ID)

			items, err := api.ListResumes(cmd.Context())
			if err != nil {
				return err
			}
			printResumes(cmd, items)
			return nil
		},
	}
}

func resumesDeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a resume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm(cmd, fmt.Sprintf("Delete resume %s?", args[0])) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}

			api := client.New(serverURL)
			if err := api.DeleteResume(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")

			items, err := api.ListResumes(cmd.Context())
			if err != nil {
				return err
			}
			printResumes(cmd, items)
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	return cmd
}

func resumesDownloadCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download the current resume PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api := client.New(serverURL)
			fileName, data, err := api.DownloadResume(cmd.Context())
			if err != nil {
				return err
			}
			if output == "" {
				output = fileName
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d bytes to %s\n", len(data), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (defaults to the server-suggested name)")
	return cmd
}

func printResumes(cmd *cobra.Command, items []client.Resume) {
	out := cmd.OutOrStdout()
	if len(items) == 0 {
		fmt.Fprintln(out, "No resumes uploaded.")
		return
	}
	for _, r := range items {
		marker := " "
		if r.IsActive {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-36s  %-30s  %s\n", marker, r.ID, r.FileName, r.UploadedAt.Local().Format("2006-01-02 15:04"))
	}
}

func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
