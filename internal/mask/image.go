package mask

import (
	"image"
	"image/color"
)

// FromImage converts a decoded image into a binary grid. Any pixel with
// nonzero luminance counts as foreground, matching the "nonzero cell =
// foreground" normalization of the quantification contract.
func FromImage(img image.Image) *Binary {
	bounds := img.Bounds()
	rows, cols := bounds.Dy(), bounds.Dx()
	b := New(rows, cols)

	// Fast path for grayscale images, which is what segmentation masks
	// decode to in practice.
	if gray, ok := img.(*image.Gray); ok {
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if gray.GrayAt(bounds.Min.X+c, bounds.Min.Y+r).Y != 0 {
					b.pix[r*cols+c] = 1
				}
			}
		}
		return b
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g := color.GrayModel.Convert(img.At(bounds.Min.X+c, bounds.Min.Y+r)).(color.Gray)
			if g.Y != 0 {
				b.pix[r*cols+c] = 1
			}
		}
	}
	return b
}
