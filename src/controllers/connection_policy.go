package controllers

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/techlearn/techlearn-backend/src/lib"
	"github.com/techlearn/techlearn-backend/src/models"
)

// CreateConnectionInput is the request body for a new connection request.
type CreateConnectionInput struct {
	StudentID   string `json:"studentId"`
	RecruiterID string `json:"recruiterId"`
	Message     string `json:"message"`
	InitiatedBy string `json:"initiatedBy"`
}

// ValidateCreateConnection applies the creation rules: all identifying
// fields present, initiatedBy one of recruiter/student, and the caller must
// be the initiating party.
func ValidateCreateConnection(in CreateConnectionInput, callerID primitive.ObjectID) (studentID, recruiterID primitive.ObjectID, initiatedBy models.Role, err error) {
	if in.StudentID == "" || in.RecruiterID == "" || in.InitiatedBy == "" {
		return primitive.NilObjectID, primitive.NilObjectID, "", lib.ErrMissingField
	}

	studentID, serr := primitive.ObjectIDFromHex(in.StudentID)
	recruiterID, rerr := primitive.ObjectIDFromHex(in.RecruiterID)
	if serr != nil || rerr != nil {
		return primitive.NilObjectID, primitive.NilObjectID, "", lib.ErrMissingField
	}

	initiatedBy, ok := models.ParseRole(in.InitiatedBy)
	if !ok || initiatedBy == models.RoleMentor {
		return primitive.NilObjectID, primitive.NilObjectID, "", lib.ErrInvalidRole
	}

	switch initiatedBy {
	case models.RoleRecruiter:
		if callerID != recruiterID {
			return primitive.NilObjectID, primitive.NilObjectID, "", lib.ErrUnauthorized
		}
	case models.RoleStudent:
		if callerID != studentID {
			return primitive.NilObjectID, primitive.NilObjectID, "", lib.ErrUnauthorized
		}
	}

	return studentID, recruiterID, initiatedBy, nil
}

// ValidateStatusUpdate applies the transition rules: only accepted/rejected
// are reachable, only from pending, and only by one of the two parties.
func ValidateStatusUpdate(conn *models.Connection, callerID primitive.ObjectID, status models.ConnectionStatus) error {
	if status != models.ConnectionStatusAccepted && status != models.ConnectionStatusRejected {
		return lib.ErrInvalidStatus
	}
	if !conn.IsParty(callerID) {
		return lib.ErrUnauthorized
	}
	if conn.Status != models.ConnectionStatusPending {
		return lib.ErrAlreadyProcessed
	}
	return nil
}
