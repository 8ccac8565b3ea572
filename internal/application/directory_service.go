package application

import (
	"github.com/sirupsen/logrus"

	"github.com/adipranaya/demo-dashboard-api/internal/domain/entity"
	repo "github.com/adipranaya/demo-dashboard-api/internal/domain/repository"
)

// DirectoryService orchestrates user directory operations for the HTTP
// boundary. All operations are total: creation always succeeds and a missing
// delete target is reported, not raised.
type DirectoryService struct {
	Directory repo.UserDirectory
	Logger    *logrus.Logger
}

func NewDirectoryService(dir repo.UserDirectory, logger *logrus.Logger) *DirectoryService {
	return &DirectoryService{Directory: dir, Logger: logger}
}

func (s *DirectoryService) CreateUser(username, email string) *entity.UserRecord {
	u := s.Directory.Create(username, email)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "username": u.Username}).Info("user created")
	}
	return u
}

func (s *DirectoryService) ListUsers() []*entity.UserRecord {
	return s.Directory.List()
}

func (s *DirectoryService) DeleteUser(id string) bool {
	removed := s.Directory.Delete(id)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": id, "removed": removed}).Info("user delete")
	}
	return removed
}

func (s *DirectoryService) Count() int {
	return s.Directory.Count()
}
