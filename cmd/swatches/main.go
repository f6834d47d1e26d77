// Command swatches demonstrates the full sRGB -> MunsellSpec -> ISCC-NBS
// pipeline end to end: it renders a horizontal strip of sample RGB
// swatches to swatches.png and prints each one's classified ISCC-NBS name.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"github.com/colorscience/munsellspace"
	"github.com/colorscience/munsellspace/iscc"
)

type swatch struct {
	name    string
	r, g, b uint8
}

var swatches = []swatch{
	{"vivid pink", 253, 121, 146},
	{"vivid red", 213, 28, 60},
	{"black", 0, 0, 0},
	{"medium gray", 128, 128, 128},
	{"white", 255, 255, 255},
	{"vivid green", 35, 234, 165},
}

func main() {
	conv := munsellspace.NewConverter()
	classifier, err := iscc.DefaultClassifier()
	if err != nil {
		log.Fatalf("building default classifier: %v", err)
	}

	const width, height = 80, 50
	img := image.NewRGBA(image.Rect(0, 0, width*len(swatches), height))

	for i, sw := range swatches {
		c := color.RGBA{R: sw.r, G: sw.g, B: sw.b, A: 255}
		xoff := i * width
		for x := xoff; x < xoff+width; x++ {
			for y := 0; y < height; y++ {
				img.Set(x, y, c)
			}
		}

		res, err := classifier.ClassifyRGB(conv, sw.r, sw.g, sw.b)
		if err != nil {
			kind, _ := munsellspace.KindOf(err)
			fmt.Printf("%-16s rgb(%3d,%3d,%3d) -> error: %v\n", sw.name, sw.r, sw.g, sw.b, kind)
			continue
		}
		fmt.Printf("%-16s rgb(%3d,%3d,%3d) -> #%-3d %-24s shade=%s\n",
			sw.name, sw.r, sw.g, sw.b, res.ColorNumber, res.Official, res.Shade)
	}

	fp, err := os.Create("swatches.png")
	if err != nil {
		log.Fatalf("creating swatches.png: %v", err)
	}
	defer fp.Close()
	if err := png.Encode(fp, img); err != nil {
		log.Fatalf("encoding swatches.png: %v", err)
	}
}
