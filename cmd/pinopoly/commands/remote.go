package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// Tunnel startup can take a while; cap the wait.
const tunnelStartTimeout = 60 * time.Second

func remoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Manage the public tunnel",
	}
	cmd.AddCommand(remoteStatusCmd(), remoteStartCmd(), remoteStopCmd(), remoteURLCmd())
	return cmd
}

func remoteStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show tunnel state",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireAdmin(); err != nil {
				return err
			}
			st, err := wire.Remote.Status(cmd.Context())
			if err != nil {
				return err
			}
			switch {
			case st.Error != "":
				fmt.Printf("Tunnel error: %s\n", st.Error)
			case st.Running:
				fmt.Printf("Tunnel running: %s\n", st.URL)
			default:
				fmt.Println("Tunnel stopped.")
			}
			return nil
		},
	}
}

func remoteStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the tunnel and wait for its public URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireAdmin(); err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), tunnelStartTimeout)
			defer cancel()
			st, err := wire.Remote.StartAndWait(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("Tunnel running: %s\n", st.URL)
			return nil
		},
	}
}

func remoteStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the tunnel",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireAdmin(); err != nil {
				return err
			}
			if err := wire.Remote.Stop(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Tunnel stopped.")
			return nil
		},
	}
}

func remoteURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "url",
		Short: "Print the tunnel's public URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireAdmin(); err != nil {
				return err
			}
			url, err := wire.Remote.URL(cmd.Context())
			if err != nil {
				return err
			}
			if url == "" {
				return fmt.Errorf("tunnel is not running")
			}
			fmt.Println(url)
			return nil
		},
	}
}
