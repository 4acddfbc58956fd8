package vuevreact

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// Social preview cards use the 1.91:1 size og:image consumers expect.
const (
	cardWidth   = 1200
	cardHeight  = 630
	jpegQuality = 85
)

// SocialCard decodes src, crops it to the card aspect ratio around its
// centre, scales it to 1200x630 and encodes it as JPEG.
func SocialCard(src io.Reader, dst io.Writer) error {
	img, _, err := image.Decode(src)
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	crop := coverRect(img.Bounds(), cardWidth, cardHeight)
	out := image.NewRGBA(image.Rect(0, 0, cardWidth, cardHeight))
	draw.CatmullRom.Scale(out, out.Bounds(), img, crop, draw.Src, nil)

	if err := jpeg.Encode(dst, out, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return fmt.Errorf("encode jpeg: %w", err)
	}
	return nil
}

// coverRect returns the largest centred sub-rectangle of b with the w:h ratio.
func coverRect(b image.Rectangle, w, h int) image.Rectangle {
	bw, bh := b.Dx(), b.Dy()
	if bw*h > bh*w {
		cw := bh * w / h
		x := b.Min.X + (bw-cw)/2
		return image.Rect(x, b.Min.Y, x+cw, b.Max.Y)
	}
	ch := bw * h / w
	y := b.Min.Y + (bh-ch)/2
	return image.Rect(b.Min.X, y, b.Max.X, y+ch)
}

// GenerateSocialCard reads the image at srcPath and writes its card to
// outPath, creating the directory.
func GenerateSocialCard(srcPath, outPath string) error {
	f, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := SocialCard(f, &buf); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outPath, buf.Bytes(), 0o644)
}
