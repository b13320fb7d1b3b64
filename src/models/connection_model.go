package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Connection struct {
	Id          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Recruiter   primitive.ObjectID `json:"recruiter" bson:"recruiter"`
	Student     primitive.ObjectID `json:"student" bson:"student"`
	Status      ConnectionStatus   `json:"status" bson:"status"` // pending, accepted, rejected
	InitiatedBy Role               `json:"initiatedBy" bson:"initiatedBy"`
	Message     string             `json:"message" bson:"message"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type ConnectionStatus string

const (
	ConnectionStatusPending  ConnectionStatus = "pending"
	ConnectionStatusAccepted ConnectionStatus = "accepted"
	ConnectionStatusRejected ConnectionStatus = "rejected"
)

// IsParty reports whether the given user is one of the two sides of the
// connection.
func (c *Connection) IsParty(userID primitive.ObjectID) bool {
	return c.Recruiter == userID || c.Student == userID
}
