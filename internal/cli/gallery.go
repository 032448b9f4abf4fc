package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"qrstudio/internal/catalog"
	"qrstudio/internal/common"
	domain "qrstudio/internal/domain/gallery"
	"qrstudio/internal/gallery"
	"qrstudio/internal/services"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"
)

type galleryOpts struct {
	output     string
	zoom       int
	background string
}

func newGalleryCmd() *cobra.Command {
	opts := galleryOpts{
		zoom:       common.GalleryZoomDefault,
		background: domain.Backgrounds[0].Name,
	}

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Write every preset and shape thumbnail as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bg, err := gallery.ResolveBackground(opts.background)
			if err != nil {
				return err
			}
			n, err := runGallery(cmd.Context(), opts.output, opts.zoom, bg)
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Wrote %d thumbnails to %s", n, opts.output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (required)")
	cmd.Flags().IntVar(&opts.zoom, "zoom", opts.zoom, "thumbnail size in pixels (60-200)")
	cmd.Flags().StringVar(&opts.background, "background", opts.background, "Transparent, White, Light Gray, Dark Gray, Black or #RRGGBB")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// runGallery renders the gallery in display order. Failed cells are logged
// and skipped, as in the desktop gallery.
func runGallery(ctx context.Context, dir string, zoom int, bg domain.Background) (int, error) {
	logger := loggerFromContext(ctx)
	cat := catalog.Default()
	prog := newProgress(logger, cat.ItemCount())

	if err := os.MkdirAll(dir, common.DefaultFilePerms); err != nil {
		return 0, err
	}

	thumbs := services.NewThumbnailService(cat, services.NewQRRenderer(slogFromContext(ctx)), services.NewCheckerboardCache(), nil)
	zoom = common.Clamp(zoom, common.GalleryZoomMin, common.GalleryZoomMax)

	for _, item := range cat.Items() {
		if err := ctx.Err(); err != nil {
			return prog.ok, err
		}

		img, err := thumbs.Thumbnail(ctx, item, zoom, bg)
		if err != nil {
			prog.fail(item.Key(), err)
			continue
		}

		path := filepath.Join(dir, thumbnailFilename(item))
		if err := imaging.Save(img, path); err != nil {
			return prog.ok, common.NewExportError("write", path, err)
		}
		prog.succeeded()
		logger.Debug("Wrote thumbnail", "path", path)
	}

	prog.done("Rendered gallery", "zoom", zoom, "dir", dir)
	return prog.ok, nil
}

// thumbnailFilename turns "Neon Pink" + rounded into neon-pink_rounded.png
func thumbnailFilename(item domain.Item) string {
	slug := strings.ToLower(strings.Join(strings.Fields(item.Family), "-"))
	return fmt.Sprintf("%s_%s.png", slug, item.Shape)
}
