// Command quantify measures a binary crack mask image and prints the result
// as JSON. The mask file is any PNG or JPEG where nonzero pixels mark crack
// foreground, typically the thresholded output of a segmentation model.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	"go-crack-quant/internal/config"
	"go-crack-quant/internal/container"
	"go-crack-quant/internal/mask"
)

func main() {
	maskPath := flag.String("in", "", "path to the binary mask image (PNG or JPEG)")
	pxToMM := flag.Float64("px-to-mm", 0, "pixel-to-millimeter scale; 0 uses PX_TO_MM from the environment")
	summary := flag.Bool("summary", false, "also print the coverage summary")
	flag.Parse()

	if *maskPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	f, err := os.Open(*maskPath)
	if err != nil {
		log.Fatalf("Failed to open mask file: %v", err)
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		log.Fatalf("Failed to decode mask image: %v", err)
	}

	result, err := c.MeasurementService.Measure(context.Background(), img, *pxToMM)
	if err != nil {
		log.Fatalf("Measurement failed: %v", err)
	}

	out := map[string]any{"quantification": result}
	if *summary {
		out["coverage"] = c.MeasurementService.Summarize(mask.FromImage(img))
	}
	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
	fmt.Println(string(encoded))
}
