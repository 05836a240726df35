package pdf

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"

	"github.com/go-pdf/fpdf"
)

// imageAsset is a decoded, registered image with its intrinsic size in
// document units. A nil asset short-circuits the corresponding draw call.
type imageAsset struct {
	name string
	opts fpdf.ImageOptions
	w, h float64
}

// registerImage validates raw bytes as PNG or JPEG and registers them with
// the document. Undecodable images are skipped with a diagnostic log and
// never abort the render.
func registerImage(doc *fpdf.Fpdf, name string, raw []byte) *imageAsset {
	if len(raw) == 0 {
		return nil
	}
	_, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		log.Printf("pdf: imagem %q ignorada: %v", name, err)
		return nil
	}
	var imgType string
	switch format {
	case "png":
		imgType = "PNG"
	case "jpeg":
		imgType = "JPG"
	default:
		log.Printf("pdf: imagem %q ignorada: formato %s não suportado", name, format)
		return nil
	}
	opts := fpdf.ImageOptions{ImageType: imgType}
	info := doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(raw))
	if info == nil || info.Width() <= 0 || info.Height() <= 0 {
		log.Printf("pdf: imagem %q ignorada: dimensões inválidas", name)
		return nil
	}
	return &imageAsset{name: name, opts: opts, w: info.Width(), h: info.Height()}
}

// fit scales the intrinsic size down to the given box, preserving aspect
// ratio. Images smaller than the box keep their natural size.
func (a *imageAsset) fit(maxW, maxH float64) (w, h float64) {
	w, h = a.w, a.h
	ratio := w / h
	if w > maxW {
		w = maxW
		h = w / ratio
	}
	if h > maxH {
		h = maxH
		w = h * ratio
	}
	return w, h
}

// fitHeight scales to an exact height, preserving aspect ratio.
func (a *imageAsset) fitHeight(height float64) (w, h float64) {
	return height * (a.w / a.h), height
}

// draw places the asset at x,y with the given size.
func (a *imageAsset) draw(doc *fpdf.Fpdf, x, y, w, h float64) {
	doc.ImageOptions(a.name, x, y, w, h, false, a.opts, 0, "")
}
