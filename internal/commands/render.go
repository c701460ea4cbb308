package commands

import (
	"fmt"

	"github.com/anas-shakeel/bmpview/internal/adjustments"
	"github.com/anas-shakeel/bmpview/internal/bmp"
	"github.com/anas-shakeel/bmpview/internal/filters"
	"github.com/anas-shakeel/bmpview/internal/logger"
	"github.com/anas-shakeel/bmpview/internal/render"
	"github.com/anas-shakeel/bmpview/internal/utils"
	"github.com/spf13/cobra"
)

var (
	renderFilter     string
	renderCrop       string
	renderBrightness float64
	renderContrast   float64
)

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Paint a bitmap on the terminal",
	Long: `Paint a bitmap on a truecolor terminal, one line per pixel row.

The image itself is never changed: filters and crops only affect what is
drawn.

Examples:
  # Draw the whole image
  bmpview render image.bmp

  # Draw a 10x5 region starting at column 2, row 3, in grayscale
  bmpview render image.bmp --crop 2,3,10,5 --filter grayscale

  # Brighter and with more contrast
  bmpview render image.bmp --brightness 1.2 --contrast 1.5`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderFilter, "filter", "", "color filter (none|invert|grayscale|luma), overrides render.filter")
	renderCmd.Flags().StringVar(&renderCrop, "crop", "", "draw only the region x,y,width,height (0-based)")
	renderCmd.Flags().Float64Var(&renderBrightness, "brightness", 1, "multiply every channel by this factor")
	renderCmd.Flags().Float64Var(&renderContrast, "contrast", 1, "contrast factor (>1 increases, <1 decreases)")
}

// viewOptions says how an image is shown. An empty filter falls back to
// render.filter; a factor of 1 leaves brightness or contrast unchanged.
type viewOptions struct {
	filter     string
	crop       string
	brightness float64
	contrast   float64
}

func runRender(cmd *cobra.Command, args []string) error {
	img, err := loadImage(args[0])
	if err != nil {
		return err
	}

	view, err := buildView(img, viewOptions{
		filter:     renderFilter,
		crop:       renderCrop,
		brightness: renderBrightness,
		contrast:   renderContrast,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !render.IsTerminal(out) {
		logger.Warn("output is not a terminal, colors are written as escape sequences")
	}

	return render.New(out, cfg.Render.Block).Draw(view)
}

// buildView applies the crop, then brightness, contrast and the color
// filter, in that order.
func buildView(img *bmp.Image, opts viewOptions) (bmp.PixelSource, error) {
	var view bmp.PixelSource = img

	if opts.crop != "" {
		bounds, err := utils.ParseInts(opts.crop, 4)
		if err != nil {
			return nil, fmt.Errorf("invalid --crop: %w", err)
		}
		view, err = adjustments.Crop(view, bounds[0], bounds[1], bounds[2], bounds[3])
		if err != nil {
			return nil, err
		}
	}

	if opts.brightness != 1 {
		brightness, err := filters.Brightness(opts.brightness, "multiply")
		if err != nil {
			return nil, err
		}
		view = filters.Apply(view, brightness)
	}

	if opts.contrast != 1 {
		contrast, err := filters.Contrast(view, opts.contrast)
		if err != nil {
			return nil, err
		}
		view = filters.Apply(view, contrast)
	}

	name := cfg.Render.Filter
	if opts.filter != "" {
		name = opts.filter
	}
	filter, err := filters.ByName(name)
	if err != nil {
		return nil, err
	}
	logger.Debug("render view", logger.KeyFilter, name, logger.KeyWidth, view.Width(), logger.KeyHeight, view.Height())

	return filters.Apply(view, filter), nil
}
