package controllers

import (
	"strconv"
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

// RegisterStudent creates a student account and returns a token.
func RegisterStudent(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"fullName"`
	}
	if err := c.BodyParser(&body); err != nil || body.Email == "" || body.Password == "" || body.FullName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Please provide email, password, and full name"))
	}

	collection := lib.DB.Collection("students")

	hash, err := lib.HashPassword(body.Password)
	if err != nil {
		lib.Logger.Error().Err(err).Msg("Student registration error")
		return lib.FailWith(c, err)
	}

	now := time.Now()
	student := models.Student{
		Id:           primitive.NewObjectID(),
		Email:        strings.ToLower(strings.TrimSpace(body.Email)),
		Password:     hash,
		FullName:     strings.TrimSpace(body.FullName),
		Skills:       []string{},
		Availability: "Available",
		Connections:  []primitive.ObjectID{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := collection.InsertOne(c.Context(), student); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Student already exists with this email"))
		}
		lib.Logger.Error().Err(err).Msg("Student registration error")
		return lib.FailWith(c, err)
	}

	token, err := lib.GenerateJWT(student.Id, student.Email, models.RoleStudent)
	if err != nil {
		lib.Logger.Error().Err(err).Msg("Token generation error")
		return lib.FailWith(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Student registered successfully",
		"token":   token,
		"user":    student,
	})
}

// LoginStudent authenticates a student and returns a token.
func LoginStudent(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil || body.Email == "" || body.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Please provide email and password"))
	}

	var student models.Student
	err := lib.DB.Collection("students").FindOne(c.Context(),
		bson.M{"email": strings.ToLower(strings.TrimSpace(body.Email))}).Decode(&student)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Invalid credentials"))
		}
		lib.Logger.Error().Err(err).Msg("Student login error")
		return lib.FailWith(c, err)
	}

	if !lib.CheckPassword(student.Password, body.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Invalid credentials"))
	}

	token, err := lib.GenerateJWT(student.Id, student.Email, models.RoleStudent)
	if err != nil {
		lib.Logger.Error().Err(err).Msg("Token generation error")
		return lib.FailWith(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user":    student,
	})
}

// GetStudentProfile returns the authenticated student's own profile.
func GetStudentProfile(c *fiber.Ctx) error {
	principal := c.Locals("principal").(*models.Principal)

	var student models.Student
	err := lib.DB.Collection("students").FindOne(c.Context(), bson.M{"_id": principal.ID}).Decode(&student)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Student not found"))
		}
		lib.Logger.Error().Err(err).Msg("Get profile error")
		return lib.FailWith(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(student)
}

// UpdateStudentProfile applies profile updates. Email and password are not
// updatable through this route.
func UpdateStudentProfile(c *fiber.Ctx) error {
	principal := c.Locals("principal").(*models.Principal)

	updates := bson.M{}
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid profile payload"))
	}
	for _, protected := range []string{"_id", "id", "email", "password", "connections", "createdAt"} {
		delete(updates, protected)
	}
	updates["updatedAt"] = time.Now()

	collection := lib.DB.Collection("students")
	result := collection.FindOneAndUpdate(c.Context(),
		bson.M{"_id": principal.ID},
		bson.M{"$set": updates},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var student models.Student
	if err := result.Decode(&student); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Student not found"))
		}
		lib.Logger.Error().Err(err).Msg("Update profile error")
		return lib.FailWith(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Profile updated successfully",
		"user":    student,
	})
}

// BrowseStudents lists students for recruiters with optional skill, salary
// and free-text filters.
func BrowseStudents(c *fiber.Ctx) error {
	query := bson.M{}

	if skills := c.Query("skills"); skills != "" {
		parts := strings.Split(skills, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		query["skills"] = bson.M{"$in": parts}
	}

	if minS, maxS := c.Query("minSalary"), c.Query("maxSalary"); minS != "" || maxS != "" {
		salary := bson.M{}
		if v, err := strconv.Atoi(minS); err == nil {
			salary["$gte"] = v
		}
		if v, err := strconv.Atoi(maxS); err == nil {
			salary["$lte"] = v
		}
		if len(salary) > 0 {
			query["expectedSalary"] = salary
		}
	}

	if search := c.Query("search"); search != "" {
		query["$or"] = []bson.M{
			{"fullName": bson.M{"$regex": search, "$options": "i"}},
			{"skills": bson.M{"$regex": search, "$options": "i"}},
		}
	}

	opts := options.Find().
		SetProjection(bson.M{"password": 0}).
		SetLimit(50)

	cursor, err := lib.DB.Collection("students").Find(c.Context(), query, opts)
	if err != nil {
		lib.Logger.Error().Err(err).Msg("Browse students error")
		return lib.FailWith(c, err)
	}
	defer cursor.Close(c.Context())

	students := []models.Student{}
	if err := cursor.All(c.Context(), &students); err != nil {
		lib.Logger.Error().Err(err).Msg("Decode students error")
		return lib.FailWith(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(students)
}

// GetStudentDashboard aggregates the student's pending requests, accepted
// connections, and a profile completion score.
func GetStudentDashboard(c *fiber.Ctx) error {
	principal := c.Locals("principal").(*models.Principal)

	var student models.Student
	err := lib.DB.Collection("students").FindOne(c.Context(), bson.M{"_id": principal.ID}).Decode(&student)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Student not found"))
		}
		lib.Logger.Error().Err(err).Msg("Dashboard error")
		return lib.FailWith(c, err)
	}

	pending, err := findConnectionsFor(c, bson.M{"student": principal.ID, "status": models.ConnectionStatusPending})
	if err != nil {
		return lib.FailWith(c, err)
	}
	accepted, err := findConnectionsFor(c, bson.M{"student": principal.ID, "status": models.ConnectionStatusAccepted})
	if err != nil {
		return lib.FailWith(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"profileCompletion":   studentProfileCompletion(&student),
		"pendingRequests":     pending,
		"acceptedConnections": accepted,
		"totalConnections":    len(accepted),
	})
}

// studentProfileCompletion scores how many of the profile fields that matter
// to recruiters are filled in, as a percentage.
func studentProfileCompletion(s *models.Student) int {
	fields := []string{
		s.FullName, s.Bio, s.Education.Degree, s.Education.Institution,
		s.Experience, s.PreferredJobRole, s.ExpectedSalary, s.Github,
		s.LinkedIn, s.Resume,
	}
	total := len(fields) + 1 // skills counted separately
	completed := 0
	for _, f := range fields {
		if f != "" {
			completed++
		}
	}
	if len(s.Skills) > 0 {
		completed++
	}
	return completed * 100 / total
}

func findConnectionsFor(c *fiber.Ctx, filter bson.M) ([]*ConnectionResponse, error) {
	cursor, err := lib.DB.Collection("connections").Find(c.Context(), filter,
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		lib.Logger.Error().Err(err).Msg("Find connections error")
		return nil, err
	}
	defer cursor.Close(c.Context())

	var connections []models.Connection
	if err := cursor.All(c.Context(), &connections); err != nil {
		lib.Logger.Error().Err(err).Msg("Decode connections error")
		return nil, err
	}

	out := make([]*ConnectionResponse, 0, len(connections))
	for i := range connections {
		out = append(out, resolveConnection(c.Context(), &connections[i]))
	}
	return out, nil
}
