package main

import (
	"io"
	"log"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

var (
	// ocrMutex ensures only one tesseract process runs at a time to prevent CPU exhaustion.
	ocrMutex sync.Mutex

	tesseractLang string
)

// allowedImageExtensions limits what gets written to disk and handed to
// tesseract.
var allowedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

func main() {
	tesseractLang = os.Getenv("TESSERACT_LANG")
	if tesseractLang == "" {
		tesseractLang = "eng"
	}

	log.Printf("OCR API starting...")
	log.Printf("Tesseract language: %s", tesseractLang)

	e := echo.New()

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				log.Printf("ERROR: %s %s %s %d %s | error: %v", v.RemoteIP, v.Method, v.URI, v.Status, v.Latency, v.Error)
			} else {
				log.Printf("REQUEST: %s %s %s %d %s", v.RemoteIP, v.Method, v.URI, v.Status, v.Latency)
			}
			return nil
		},
	}))
	e.Use(middleware.Recover())

	e.POST("/extract", func(c echo.Context) error {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing image file"})
		}

		ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
		if !allowedImageExtensions[ext] {
			// Content sniffing is tesseract's problem; unknown
			// extensions get a neutral one.
			ext = ".png"
		}

		src, err := fileHeader.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Failed to read image"})
		}
		defer src.Close()

		tmp, err := os.CreateTemp("", "ocr-*"+ext)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to store image"})
		}
		tmpPath := tmp.Name()
		defer os.Remove(tmpPath)

		if _, err := io.Copy(tmp, src); err != nil {
			tmp.Close()
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to store image"})
		}
		tmp.Close()

		// Acquire lock to serialize OCR tasks
		ocrMutex.Lock()
		defer ocrMutex.Unlock()

		log.Printf("Running OCR on %s (%d bytes)", fileHeader.Filename, fileHeader.Size)

		// tesseract <image> stdout -l <lang>
		// Wrapped in 'nice -n 15' to give it lower CPU priority.
		cmd := exec.Command("nice", "-n", "15", "tesseract", tmpPath, "stdout", "-l", tesseractLang)

		output, err := cmd.CombinedOutput()
		if err != nil {
			log.Printf("tesseract failed: %v\nOutput: %s", err, string(output))
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{
				"error":   "Failed to process image",
				"details": string(output),
			})
		}

		log.Printf("Successfully extracted %d bytes of text from %s", len(output), fileHeader.Filename)
		return c.JSON(http.StatusOK, map[string]string{"text": string(output)})
	})

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	// Start server
	e.Logger.Fatal(e.Start(":8081"))
}
