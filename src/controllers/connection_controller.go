package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/techlearn/techlearn-backend/src/lib"
	"github.com/techlearn/techlearn-backend/src/models"
)

// ConnectionResponse is a Connection with both parties resolved to
// display-safe summaries.
type ConnectionResponse struct {
	Id          primitive.ObjectID      `json:"id"`
	Recruiter   *models.RecruiterDto    `json:"recruiter"`
	Student     *models.StudentDto      `json:"student"`
	Status      models.ConnectionStatus `json:"status"`
	InitiatedBy models.Role             `json:"initiatedBy"`
	Message     string                  `json:"message"`
	CreatedAt   time.Time               `json:"createdAt"`
	UpdatedAt   time.Time               `json:"updatedAt"`
}

// CreateConnectionRequest sends a connection request between a recruiter and
// a student. The unique {recruiter, student} index makes simultaneous
// requests for the same pair collapse to a single document.
func CreateConnectionRequest(c *fiber.Ctx) error {
	principal := c.Locals("principal").(*models.Principal)

	var input CreateConnectionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Please provide studentId, recruiterId, and initiatedBy"))
	}

	studentID, recruiterID, initiatedBy, err := ValidateCreateConnection(input, principal.ID)
	if err != nil {
		return lib.FailWith(c, err)
	}

	now := time.Now()
	connection := models.Connection{
		Id:          primitive.NewObjectID(),
		Recruiter:   recruiterID,
		Student:     studentID,
		Status:      models.ConnectionStatusPending,
		InitiatedBy: initiatedBy,
		Message:     input.Message,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err = lib.DB.Collection("connections").InsertOne(c.Context(), connection)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return lib.FailWith(c, lib.ErrDuplicateConnection)
		}
		lib.Logger.Error().Err(err).Msg("Create connection error")
		return lib.FailWith(c, err)
	}

	resp := resolveConnection(c.Context(), &connection)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Connection request sent successfully",
		"connection": resp,
	})
}

// UpdateConnectionStatus accepts or rejects a pending connection request.
func UpdateConnectionStatus(c *fiber.Ctx) error {
	principal := c.Locals("principal").(*models.Principal)

	connectionID, err := primitive.ObjectIDFromHex(c.Params("connectionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid connection ID format"))
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid status"))
	}

	collection := lib.DB.Collection("connections")
	var connection models.Connection
	err = collection.FindOne(c.Context(), bson.M{"_id": connectionID}).Decode(&connection)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Connection not found"))
		}
		lib.Logger.Error().Err(err).Msg("Find connection error")
		return lib.FailWith(c, err)
	}

	status := models.ConnectionStatus(body.Status)
	if err := ValidateStatusUpdate(&connection, principal.ID, status); err != nil {
		return lib.FailWith(c, err)
	}

	now := time.Now()
	_, err = collection.UpdateOne(c.Context(), bson.M{"_id": connectionID}, bson.M{
		"$set": bson.M{"status": status, "updatedAt": now},
	})
	if err != nil {
		lib.Logger.Error().Err(err).Msg("Update connection error")
		return lib.FailWith(c, err)
	}
	connection.Status = status
	connection.UpdatedAt = now

	// On accept, each party joins the other's confirmed-connections set.
	// $addToSet keeps this idempotent; failures are logged, not rolled back.
	if status == models.ConnectionStatusAccepted {
		_, err = lib.DB.Collection("students").UpdateOne(c.Context(),
			bson.M{"_id": connection.Student},
			bson.M{"$addToSet": bson.M{"connections": connection.Recruiter}})
		if err != nil {
			lib.Logger.Error().Err(err).Msg("Error updating student connections")
		}
		_, err = lib.DB.Collection("recruiters").UpdateOne(c.Context(),
			bson.M{"_id": connection.Recruiter},
			bson.M{"$addToSet": bson.M{"connections": connection.Student}})
		if err != nil {
			lib.Logger.Error().Err(err).Msg("Error updating recruiter connections")
		}
	}

	resp := resolveConnection(c.Context(), &connection)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":    "Connection " + string(status) + " successfully",
		"connection": resp,
	})
}

// GetMyConnections returns all connections where the caller is the
// role-matching party, newest first, with the counter-party resolved.
func GetMyConnections(c *fiber.Ctx) error {
	principal := c.Locals("principal").(*models.Principal)

	var filter bson.M
	switch principal.Role {
	case models.RoleRecruiter:
		filter = bson.M{"recruiter": principal.ID}
	case models.RoleStudent:
		filter = bson.M{"student": principal.ID}
	default:
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid user role"))
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := lib.DB.Collection("connections").Find(c.Context(), filter, opts)
	if err != nil {
		lib.Logger.Error().Err(err).Msg("Get connections error")
		return lib.FailWith(c, err)
	}
	defer cursor.Close(c.Context())

	var connections []models.Connection
	if err := cursor.All(c.Context(), &connections); err != nil {
		lib.Logger.Error().Err(err).Msg("Decode connections error")
		return lib.FailWith(c, err)
	}

	response := make([]*ConnectionResponse, 0, len(connections))
	for i := range connections {
		response = append(response, resolveConnection(c.Context(), &connections[i]))
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// resolveConnection attaches display-safe summaries of both parties.
// Missing users leave a nil summary rather than failing the request.
func resolveConnection(ctx context.Context, conn *models.Connection) *ConnectionResponse {
	resp := &ConnectionResponse{
		Id:          conn.Id,
		Status:      conn.Status,
		InitiatedBy: conn.InitiatedBy,
		Message:     conn.Message,
		CreatedAt:   conn.CreatedAt,
		UpdatedAt:   conn.UpdatedAt,
	}

	var recruiter models.RecruiterDto
	err := lib.DB.Collection("recruiters").FindOne(ctx,
		bson.M{"_id": conn.Recruiter},
		options.FindOne().SetProjection(bson.M{
			"fullName":           1,
			"companyName":        1,
			"profilePicture":     1,
			"companyDescription": 1,
		}),
	).Decode(&recruiter)
	if err == nil {
		resp.Recruiter = &recruiter
	} else if err != mongo.ErrNoDocuments {
		lib.Logger.Error().Err(err).Msg("Error resolving recruiter")
	}

	var student models.StudentDto
	err = lib.DB.Collection("students").FindOne(ctx,
		bson.M{"_id": conn.Student},
		options.FindOne().SetProjection(bson.M{
			"fullName":       1,
			"profilePicture": 1,
			"skills":         1,
			"bio":            1,
		}),
	).Decode(&student)
	if err == nil {
		resp.Student = &student
	} else if err != mongo.ErrNoDocuments {
		lib.Logger.Error().Err(err).Msg("Error resolving student")
	}

	return resp
}
