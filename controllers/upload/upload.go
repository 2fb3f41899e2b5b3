package uploadController

import (
	"log"

	"skillforge/middleware"
	"skillforge/utils"

	"github.com/gofiber/fiber/v2"
)

// UploadFile stores one media file and returns its public URL. The file kind
// (course_images, course_videos, avatars) selects the target folder on the
// media host.
func UploadFile(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "No file uploaded")
	}

	kind := c.FormValue("kind", "misc")

	result, err := utils.UploadMedia(file, kind)
	if err != nil {
		log.Printf("Upload error: %v", err)
		return middleware.ServerErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message":  "File uploaded successfully",
		"fileUrl":  result.URL,
		"publicId": result.PublicID,
	})
}
