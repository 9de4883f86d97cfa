// Command gen renders sample quads with different fragment shaders, captures
// framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/quadgl"
	"github.com/go-theft-auto/quadgl/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// vertexSource is shared by every screenshot: pass the position through and
// hand the fragment stage a [0,1] coordinate.
const vertexSource = `#version 410
in vec2 position;
out vec2 uv;
void main() {
	uv = position * 0.5 + 0.5;
	gl_Position = vec4(position, 0.0, 1.0);
}`

// screenshot defines a single quad screenshot to capture.
type screenshot struct {
	name     string // filename without extension
	width    int    // viewport width
	height   int    // viewport height
	fragment string // fragment shader source
	clear    quadgl.Color
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	ctx := opengl.New(800, 600)
	defer ctx.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(ctx, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(ctx *opengl.Context, s screenshot, outDir string) error {
	// Only update the wrapped size. The hidden window stays at 800×600,
	// larger than every screenshot, so the viewport region is always inside
	// the framebuffer.
	ctx.Resize(s.width, s.height)

	position, err := quadgl.NewAttribute("position", 2, 2, quadgl.Float)
	if err != nil {
		return err
	}
	err = quadgl.DrawFrame(ctx, quadgl.StaticSource{
		"vertexShader":   vertexSource,
		"fragmentShader": s.fragment,
	},
		quadgl.WithVertexData([]float32{-1, -1, 1, -1, -1, 1, 1, 1}),
		quadgl.WithAttributes(position),
		quadgl.WithClearColor(s.clear),
	)
	if err != nil {
		return err
	}

	// Read pixels
	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns the list of all quad screenshots to generate.
func buildScreenshots() []screenshot {
	return []screenshot{
		{
			name: "gradient", width: 400, height: 300,
			fragment: `#version 410
in vec2 uv;
out vec4 fragColor;
void main() {
	fragColor = vec4(uv, 0.5, 1.0);
}`,
		},
		{
			name: "checker", width: 400, height: 300,
			fragment: `#version 410
in vec2 uv;
out vec4 fragColor;
void main() {
	vec2 c = floor(uv * 8.0);
	float f = mod(c.x + c.y, 2.0);
	fragColor = vec4(vec3(0.2 + 0.6 * f), 1.0);
}`,
		},
		{
			name: "rings", width: 400, height: 300,
			fragment: `#version 410
in vec2 uv;
out vec4 fragColor;
void main() {
	float d = length(uv - 0.5);
	float f = 0.5 + 0.5 * sin(d * 60.0);
	fragColor = vec4(0.1, f, 0.6, 1.0);
}`,
			clear: quadgl.Color{R: 0.12, G: 0.12, B: 0.14, A: 1},
		},
	}
}
