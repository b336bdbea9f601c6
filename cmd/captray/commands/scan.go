package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ytget/captray/internal/recents"
)

func (c *CLI) newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List the recent recordings and screenshots, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			recordings, screenshots := roots(cmd)
			thumbs, _ := cmd.Flags().GetBool("thumbnails")

			loader := recents.NewLoader()
			loader.SetLogger(c.logger)

			items := loader.Scan(cmd.Context(), recordings, screenshots, thumbs)
			c.logger.Debug().Int("items", len(items)).Str("recordings", recordings).Str("screenshots", screenshots).Msg("scan done")

			for _, it := range items {
				thumb := "-"
				if it.HasThumbnail() {
					thumb = fmt.Sprintf("%dx%d", it.Thumbnail.Width, it.Thumbnail.Height)
				}
				_, _ = fmt.Fprintf(c.out, "%-10s  %s  %-7s  %s  %s\n",
					it.Kind, it.CreatedAt.Format(time.RFC3339), thumb, it.DisplayName, it.Path)
			}
			return nil
		},
	}
	cmd.Flags().BoolP("thumbnails", "t", false, "Generate thumbnails while scanning")
	return cmd
}
