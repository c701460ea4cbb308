package commands

import (
	"github.com/anas-shakeel/bmpview/internal/report"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Display the headers of a bitmap file",
	Long: `Display the file header and the DIB header of a bitmap file, along
with the row stride, row padding and pixel count.

Examples:
  # Show as a table
  bmpview info image.bmp

  # Show as JSON
  bmpview info image.bmp -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	img, err := loadImage(args[0])
	if err != nil {
		return err
	}

	return report.PrintMetadata(cmd.OutOrStdout(), reportFormat(), report.NewMetadata(img))
}
