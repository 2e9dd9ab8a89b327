package main

import (
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"math"
	"os"

	"golang.org/x/image/draw"
)

// 一次性的头像裁剪工具：从全身照或竖版照片中裁出职业头像。
// 取画面上部偏移 10% 的正方形区域，缩放到 400x400，再做轻微的
// 亮度、对比度、饱和度增强与锐化，最后以 95 质量保存 JPEG。

const (
	outputSize      = 400
	topOffsetRatio  = 0.1
	brightnessBoost = 1.1
	contrastBoost   = 1.05
	saturationBoost = 1.1
	jpegQuality     = 95
)

func main() {
	inPath := flag.String("in", "media/profile/profile.jpg", "输入图片路径")
	outPath := flag.String("out", "media/profile/profile_headshot.jpg", "输出图片路径")
	flag.Parse()

	if _, err := os.Stat(*inPath); err != nil {
		fmt.Printf("input image not found: %s\n", *inPath)
		os.Exit(1)
	}

	if err := createHeadshot(*inPath, *outPath); err != nil {
		fmt.Printf("error processing image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("professional headshot created: %s\n", *outPath)
}

func createHeadshot(inPath, outPath string) error {
	src, err := loadImage(inPath)
	if err != nil {
		return err
	}

	cropped := cropHeadshot(src)

	// 缩放到标准头像尺寸
	scaled := image.NewRGBA(image.Rect(0, 0, outputSize, outputSize))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), cropped, cropped.Bounds(), draw.Src, nil)

	enhance(scaled)
	sharpened := unsharpMask(scaled, 1.5, 12)

	return saveJPEG(outPath, sharpened)
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// cropHeadshot 在原图中选出偏向上部的正方形区域
func cropHeadshot(src image.Image) *image.RGBA {
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	cropSize := width
	if height < width {
		cropSize = height
	}

	left := bounds.Min.X + (width-cropSize)/2
	top := bounds.Min.Y + int(float64(height)*topOffsetRatio)
	if top+cropSize > bounds.Max.Y {
		top = bounds.Max.Y - cropSize
	}

	rect := image.Rect(left, top, left+cropSize, top+cropSize)
	cropped := image.NewRGBA(image.Rect(0, 0, cropSize, cropSize))
	draw.Draw(cropped, cropped.Bounds(), src, rect.Min, draw.Src)
	return cropped
}

// enhance 就地应用亮度、对比度与饱和度调整
func enhance(img *image.RGBA) {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			offset := img.PixOffset(x, y)
			r := float64(img.Pix[offset])
			g := float64(img.Pix[offset+1])
			b := float64(img.Pix[offset+2])

			r *= brightnessBoost
			g *= brightnessBoost
			b *= brightnessBoost

			r = (r-128)*contrastBoost + 128
			g = (g-128)*contrastBoost + 128
			b = (b-128)*contrastBoost + 128

			// 饱和度：向亮度值靠拢或远离
			luma := 0.299*r + 0.587*g + 0.114*b
			r = luma + (r-luma)*saturationBoost
			g = luma + (g-luma)*saturationBoost
			b = luma + (b-luma)*saturationBoost

			img.Pix[offset] = clampByte(r)
			img.Pix[offset+1] = clampByte(g)
			img.Pix[offset+2] = clampByte(b)
		}
	}
}

// unsharpMask 用 3x3 盒式模糊近似的反锐化遮罩提升边缘清晰度。
// amount 控制锐化强度，threshold 避免放大平坦区域的噪点。
func unsharpMask(img *image.RGBA, amount float64, threshold int) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	copy(out.Pix, img.Pix)

	for y := bounds.Min.Y + 1; y < bounds.Max.Y-1; y++ {
		for x := bounds.Min.X + 1; x < bounds.Max.X-1; x++ {
			for channel := 0; channel < 3; channel++ {
				var sum int
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						sum += int(img.Pix[img.PixOffset(x+dx, y+dy)+channel])
					}
				}
				blurred := float64(sum) / 9

				offset := img.PixOffset(x, y) + channel
				original := float64(img.Pix[offset])
				diff := original - blurred
				if math.Abs(diff) < float64(threshold) {
					continue
				}
				out.Pix[offset] = clampByte(original + diff*amount)
			}
		}
	}
	return out
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func saveJPEG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality})
}
