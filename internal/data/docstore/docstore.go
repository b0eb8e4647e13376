// Package docstore implements the repo interfaces on Firestore and Firebase
// Auth. Collections mirror the SQL tables: user_roadmaps and communities.
package docstore

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	roadmapCollection   = "user_roadmaps"
	communityCollection = "communities"
)

func isNotFound(err error) bool {
	return err != nil && status.Code(err) == codes.NotFound
}

func isAlreadyExists(err error) bool {
	return err != nil && status.Code(err) == codes.AlreadyExists
}

