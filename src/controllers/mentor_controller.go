package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/techlearn/techlearn-backend/src/lib"
	"github.com/techlearn/techlearn-backend/src/models"
)

// RegisterMentor creates a mentor account and returns a token. Mentors can
// authenticate and hold presence; connection-gated messaging for them is an
// extension point.
func RegisterMentor(c *fiber.Ctx) error {
	var body struct {
		Email           string `json:"email"`
		Password        string `json:"password"`
		FullName        string `json:"fullName"`
		Company         string `json:"company"`
		AreaOfExpertise string `json:"areaOfExpertise"`
		Experience      string `json:"experience"`
		LinkedIn        string `json:"linkedIn"`
	}
	if err := c.BodyParser(&body); err != nil || body.Email == "" || body.Password == "" || body.FullName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Please provide email, password, and full name"))
	}

	hash, err := lib.HashPassword(body.Password)
	if err != nil {
		lib.Logger.Error().Err(err).Msg("Mentor registration error")
		return lib.FailWith(c, err)
	}

	now := time.Now()
	mentor := models.Mentor{
		Id:              primitive.NewObjectID(),
		Email:           strings.ToLower(strings.TrimSpace(body.Email)),
		Password:        hash,
		FullName:        strings.TrimSpace(body.FullName),
		Company:         body.Company,
		AreaOfExpertise: body.AreaOfExpertise,
		Experience:      body.Experience,
		LinkedIn:        body.LinkedIn,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := lib.DB.Collection("mentors").InsertOne(c.Context(), mentor); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Mentor already exists with this email"))
		}
		lib.Logger.Error().Err(err).Msg("Mentor registration error")
		return lib.FailWith(c, err)
	}

	token, err := lib.GenerateJWT(mentor.Id, mentor.Email, models.RoleMentor)
	if err != nil {
		lib.Logger.Error().Err(err).Msg("Token generation error")
		return lib.FailWith(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Mentor registered successfully",
		"token":   token,
		"user":    mentor,
	})
}

// LoginMentor authenticates a mentor and returns a token.
func LoginMentor(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil || body.Email == "" || body.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Please provide email and password"))
	}

	var mentor models.Mentor
	err := lib.DB.Collection("mentors").FindOne(c.Context(),
		bson.M{"email": strings.ToLower(strings.TrimSpace(body.Email))}).Decode(&mentor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Invalid credentials"))
		}
		lib.Logger.Error().Err(err).Msg("Mentor login error")
		return lib.FailWith(c, err)
	}

	if !lib.CheckPassword(mentor.Password, body.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Invalid credentials"))
	}

	token, err := lib.GenerateJWT(mentor.Id, mentor.Email, models.RoleMentor)
	if err != nil {
		lib.Logger.Error().Err(err).Msg("Token generation error")
		return lib.FailWith(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user":    mentor,
	})
}

// BrowseMentors lists mentors for the community page.
func BrowseMentors(c *fiber.Ctx) error {
	opts := options.Find().
		SetProjection(bson.M{"password": 0}).
		SetLimit(50)

	cursor, err := lib.DB.Collection("mentors").Find(c.Context(), bson.M{}, opts)
	if err != nil {
		lib.Logger.Error().Err(err).Msg("Browse mentors error")
		return lib.FailWith(c, err)
	}
	defer cursor.Close(c.Context())

	mentors := []models.Mentor{}
	if err := cursor.All(c.Context(), &mentors); err != nil {
		lib.Logger.Error().Err(err).Msg("Decode mentors error")
		return lib.FailWith(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(mentors)
}

// GetMentorProfile returns the authenticated mentor's own profile.
func GetMentorProfile(c *fiber.Ctx) error {
	principal := c.Locals("principal").(*models.Principal)

	var mentor models.Mentor
	err := lib.DB.Collection("mentors").FindOne(c.Context(), bson.M{"_id": principal.ID}).Decode(&mentor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Mentor not found"))
		}
		lib.Logger.Error().Err(err).Msg("Get profile error")
		return lib.FailWith(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(mentor)
}

// UpdateMentorProfile applies profile updates. Email and password are not
// updatable through this route.
func UpdateMentorProfile(c *fiber.Ctx) error {
	principal := c.Locals("principal").(*models.Principal)

	updates := bson.M{}
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid profile payload"))
	}
	for _, protected := range []string{"_id", "id", "email", "password", "createdAt"} {
		delete(updates, protected)
	}
	updates["updatedAt"] = time.Now()

	result := lib.DB.Collection("mentors").FindOneAndUpdate(c.Context(),
		bson.M{"_id": principal.ID},
		bson.M{"$set": updates},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var mentor models.Mentor
	if err := result.Decode(&mentor); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Mentor not found"))
		}
		lib.Logger.Error().Err(err).Msg("Update profile error")
		return lib.FailWith(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Profile updated successfully",
		"user":    mentor,
	})
}
