package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/anas-shakeel/bmpview/internal/logger"
	"github.com/anas-shakeel/bmpview/internal/report"
	"github.com/spf13/cobra"
)

var pixelCmd = &cobra.Command{
	Use:   "pixel <file> <row> <col>",
	Short: "Display the color of one pixel",
	Long: `Display the red, green and blue values of the pixel at row and col.

Rows count from the top of the picture. The first row and column are
numbered 1 unless render.index_base is set to 0.

Examples:
  # Top-left pixel
  bmpview pixel image.bmp 1 1

  # As YAML
  bmpview pixel image.bmp 3 7 -o yaml`,
	Args: cobra.ExactArgs(3),
	RunE: runPixel,
}

func runPixel(cmd *cobra.Command, args []string) error {
	row, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid row %q: must be an integer", args[1])
	}
	col, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid column %q: must be an integer", args[2])
	}

	img, err := loadImage(args[0])
	if err != nil {
		return err
	}

	base := cfg.Render.IndexBase
	color, err := img.PixelAt(row-base, col-base)
	if err != nil {
		logger.Debug("pixel lookup failed", logger.KeyRow, row, logger.KeyCol, col, logger.KeyError, err)
		return errors.New(report.DescribeError(err, base))
	}

	return report.PrintPixel(cmd.OutOrStdout(), reportFormat(), report.NewPixel(row, col, color))
}
