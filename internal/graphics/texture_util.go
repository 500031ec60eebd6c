package graphics

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// TextureData is a decoded image packed as tightly as the GPU expects it:
// rows bottom-up when flipped, 3 or 4 bytes per pixel.
type TextureData struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

// DecodeTexture loads an image file and packs it into channels (3 or 4)
// bytes per pixel, flipping it vertically when asked.
func DecodeTexture(path string, channels int, flip bool) (*TextureData, error) {
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("texture %s: unsupported channel count %d", path, channels)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	return packImage(img, channels, flip), nil
}

func packImage(img image.Image, channels int, flip bool) *TextureData {
	b := img.Bounds()
	// Straight alpha, as stored in the file. Drawing goes through
	// premultiplied colour, so NRGBA sources are read as they are.
	rgba, ok := img.(*image.NRGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) {
		rgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}

	w, h := b.Dx(), b.Dy()
	out := &TextureData{Width: w, Height: h, Channels: channels, Pix: make([]byte, w*h*channels)}
	for y := 0; y < h; y++ {
		srcRow := y
		if flip {
			srcRow = h - 1 - y
		}
		src := rgba.Pix[srcRow*rgba.Stride : srcRow*rgba.Stride+w*4]
		dst := out.Pix[y*w*channels : (y+1)*w*channels]
		if channels == 4 {
			copy(dst, src)
			continue
		}
		for x := 0; x < w; x++ {
			copy(dst[x*3:x*3+3], src[x*4:x*4+3])
		}
	}
	return out
}

// UploadTexture creates a repeating, linearly filtered 2D texture with mipmaps.
func UploadTexture(dev Device, data *TextureData) uint32 {
	format := RGB
	if data.Channels == 4 {
		format = RGBA
	}

	texture := dev.GenTexture()
	dev.BindTexture(Texture2D, texture)

	dev.TexParameteri(Texture2D, TextureWrapS, Repeat)
	dev.TexParameteri(Texture2D, TextureWrapT, Repeat)
	dev.TexParameteri(Texture2D, TextureMinFilter, Linear)
	dev.TexParameteri(Texture2D, TextureMagFilter, Linear)

	// RGB rows are not 4-byte aligned in general
	dev.PixelStorei(UnpackAlignment, 1)
	dev.TexImage2D(Texture2D, int32(format), int32(data.Width), int32(data.Height), format, data.Pix)
	dev.GenerateMipmap(Texture2D)

	dev.BindTexture(Texture2D, 0)
	return texture
}

// LoadTexture decodes and uploads a texture file.
func LoadTexture(dev Device, path string, channels int, flip bool) (uint32, error) {
	data, err := DecodeTexture(path, channels, flip)
	if err != nil {
		return 0, err
	}
	texture := UploadTexture(dev, data)
	log.Printf("Loaded texture %s (%dx%d, %d channels)", path, data.Width, data.Height, data.Channels)
	return texture, nil
}
