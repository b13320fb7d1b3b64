package controllers

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/techlearn/techlearn-backend/src/lib"
	"github.com/techlearn/techlearn-backend/src/models"
)

const maxUploadSize = 5 * 1024 * 1024 // 5MB

var uploadDir = "./uploads"

// SetUploadDir points uploads at the configured directory and makes sure the
// subdirectories exist.
func SetUploadDir(dir string) error {
	uploadDir = dir
	for _, sub := range []string{"images", "resumes"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return err
		}
	}
	return nil
}

var documentExts = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true,
}

var imageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true,
}

// uploadSubdir classifies an upload by extension into its storage
// subdirectory. Anything outside the document and image whitelists is
// rejected.
func uploadSubdir(filename string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case documentExts[ext]:
		return "resumes", true
	case imageExts[ext]:
		return "images", true
	}
	return "", false
}

// saveUpload stores the named multipart file under a random name and returns
// its serving URL. A missing file and a rejected file are distinct errors.
func saveUpload(c *fiber.Ctx, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", lib.ErrMissingField
	}
	if file.Size > maxUploadSize {
		return "", lib.ErrInvalidUpload
	}

	sub, ok := uploadSubdir(file.Filename)
	if !ok {
		return "", lib.ErrInvalidUpload
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	if err := c.SaveFile(file, filepath.Join(uploadDir, sub, name)); err != nil {
		return "", err
	}

	return "/uploads/" + sub + "/" + name, nil
}

// UploadFile stores a file sent for a message attachment and returns its URL.
func UploadFile(c *fiber.Ctx) error {
	url, err := saveUpload(c, "file")
	if err != nil {
		if err == lib.ErrMissingField {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("No file uploaded"))
		}
		lib.Logger.Error().Err(err).Msg("Upload error")
		return lib.FailWith(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "File uploaded successfully",
		"url":     url,
	})
}

// attachUpload stores an upload and persists its URL onto the caller's
// profile document.
func attachUpload(c *fiber.Ctx, collection, field, docField, okMessage string) error {
	principal := c.Locals("principal").(*models.Principal)

	url, err := saveUpload(c, field)
	if err != nil {
		if err == lib.ErrMissingField {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("No file uploaded"))
		}
		lib.Logger.Error().Err(err).Msg("Upload error")
		return lib.FailWith(c, err)
	}

	_, err = lib.DB.Collection(collection).UpdateOne(c.Context(),
		bson.M{"_id": principal.ID},
		bson.M{"$set": bson.M{docField: url}})
	if err != nil {
		lib.Logger.Error().Err(err).Msg("Upload error")
		return lib.FailWith(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": okMessage,
		docField:  url,
	})
}

func UploadStudentResume(c *fiber.Ctx) error {
	return attachUpload(c, "students", "resume", "resume", "Resume uploaded successfully")
}

func UploadStudentProfilePicture(c *fiber.Ctx) error {
	return attachUpload(c, "students", "profilePicture", "profilePicture", "Profile picture uploaded successfully")
}

func UploadRecruiterLogo(c *fiber.Ctx) error {
	return attachUpload(c, "recruiters", "companyLogo", "companyLogo", "Company logo uploaded successfully")
}

func UploadRecruiterProfilePicture(c *fiber.Ctx) error {
	return attachUpload(c, "recruiters", "profilePicture", "profilePicture", "Profile picture uploaded successfully")
}
