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

// RegisterRecruiter creates a recruiter account and returns a token.
func RegisterRecruiter(c *fiber.Ctx) error {
	var body struct {
		Email       string `json:"email"`
		Password    string `json:"password"`
		FullName    string `json:"fullName"`
		CompanyName string `json:"companyName"`
	}
	if err := c.BodyParser(&body); err != nil || body.Email == "" || body.Password == "" || body.FullName == "" || body.CompanyName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Please provide email, password, full name, and company name"))
	}

	hash, err := lib.HashPassword(body.Password)
	if err != nil {
		lib.Logger.Error().Err(err).Msg("Recruiter registration error")
		return lib.FailWith(c, err)
	}

	now := time.Now()
	recruiter := models.Recruiter{
		Id:          primitive.NewObjectID(),
		Email:       strings.ToLower(strings.TrimSpace(body.Email)),
		Password:    hash,
		FullName:    strings.TrimSpace(body.FullName),
		CompanyName: strings.TrimSpace(body.CompanyName),
		Connections: []primitive.ObjectID{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := lib.DB.Collection("recruiters").InsertOne(c.Context(), recruiter); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Recruiter already exists with this email"))
		}
		lib.Logger.Error().Err(err).Msg("Recruiter registration error")
		return lib.FailWith(c, err)
	}

	token, err := lib.GenerateJWT(recruiter.Id, recruiter.Email, models.RoleRecruiter)
	if err != nil {
		lib.Logger.Error().Err(err).Msg("Token generation error")
		return lib.FailWith(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Recruiter registered successfully",
		"token":   token,
		"user":    recruiter,
	})
}

// LoginRecruiter authenticates a recruiter and returns a token.
func LoginRecruiter(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil || body.Email == "" || body.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Please provide email and password"))
	}

	var recruiter models.Recruiter
	err := lib.DB.Collection("recruiters").FindOne(c.Context(),
		bson.M{"email": strings.ToLower(strings.TrimSpace(body.Email))}).Decode(&recruiter)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Invalid credentials"))
		}
		lib.Logger.Error().Err(err).Msg("Recruiter login error")
		return lib.FailWith(c, err)
	}

	if !lib.CheckPassword(recruiter.Password, body.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Invalid credentials"))
	}

	token, err := lib.GenerateJWT(recruiter.Id, recruiter.Email, models.RoleRecruiter)
	if err != nil {
		lib.Logger.Error().Err(err).Msg("Token generation error")
		return lib.FailWith(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user":    recruiter,
	})
}

// GetRecruiterProfile returns the authenticated recruiter's own profile.
func GetRecruiterProfile(c *fiber.Ctx) error {
	principal := c.Locals("principal").(*models.Principal)

	var recruiter models.Recruiter
	err := lib.DB.Collection("recruiters").FindOne(c.Context(), bson.M{"_id": principal.ID}).Decode(&recruiter)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Recruiter not found"))
		}
		lib.Logger.Error().Err(err).Msg("Get profile error")
		return lib.FailWith(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(recruiter)
}

// UpdateRecruiterProfile applies profile updates. Email and password are not
// updatable through this route.
func UpdateRecruiterProfile(c *fiber.Ctx) error {
	principal := c.Locals("principal").(*models.Principal)

	updates := bson.M{}
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid profile payload"))
	}
	for _, protected := range []string{"_id", "id", "email", "password", "connections", "createdAt"} {
		delete(updates, protected)
	}
	updates["updatedAt"] = time.Now()

	result := lib.DB.Collection("recruiters").FindOneAndUpdate(c.Context(),
		bson.M{"_id": principal.ID},
		bson.M{"$set": updates},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var recruiter models.Recruiter
	if err := result.Decode(&recruiter); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Recruiter not found"))
		}
		lib.Logger.Error().Err(err).Msg("Update profile error")
		return lib.FailWith(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Profile updated successfully",
		"user":    recruiter,
	})
}

// BrowseRecruiters lists recruiters for students to browse.
func BrowseRecruiters(c *fiber.Ctx) error {
	opts := options.Find().
		SetProjection(bson.M{"password": 0}).
		SetLimit(50)

	cursor, err := lib.DB.Collection("recruiters").Find(c.Context(), bson.M{}, opts)
	if err != nil {
		lib.Logger.Error().Err(err).Msg("Browse recruiters error")
		return lib.FailWith(c, err)
	}
	defer cursor.Close(c.Context())

	recruiters := []models.Recruiter{}
	if err := cursor.All(c.Context(), &recruiters); err != nil {
		lib.Logger.Error().Err(err).Msg("Decode recruiters error")
		return lib.FailWith(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(recruiters)
}

// GetRecruiterDashboard aggregates the recruiter's sent requests and
// accepted connections.
func GetRecruiterDashboard(c *fiber.Ctx) error {
	principal := c.Locals("principal").(*models.Principal)

	sent, err := findConnectionsFor(c, bson.M{"recruiter": principal.ID, "status": models.ConnectionStatusPending})
	if err != nil {
		return lib.FailWith(c, err)
	}
	accepted, err := findConnectionsFor(c, bson.M{"recruiter": principal.ID, "status": models.ConnectionStatusAccepted})
	if err != nil {
		return lib.FailWith(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"sentRequests":        sent,
		"acceptedConnections": accepted,
		"totalConnections":    len(accepted),
		"pendingRequests":     len(sent),
	})
}
