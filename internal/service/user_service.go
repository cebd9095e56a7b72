package service

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"mindcare/internal/model"
	"mindcare/internal/repository"
)

// UserService manages profiles and staff administration of accounts
type UserService struct {
	users       repository.UserRepo
	auth        *AuthService
	assessments *AssessmentService
	broadcaster Broadcaster
}

// NewUserService creates a new user service
func NewUserService(users repository.UserRepo, auth *AuthService, assessments *AssessmentService) *UserService {
	return &UserService{
		users:       users,
		auth:        auth,
		assessments: assessments,
		broadcaster: noopBroadcaster{},
	}
}

// SetBroadcaster sets the realtime hub used to drop sessions of changed accounts
func (s *UserService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Get returns a user visible to the actor
func (s *UserService) Get(ctx context.Context, actor *model.UserClaims, id string) (*model.User, error) {
	user, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.ID != actor.UserID && !(actor.Role.IsStaff() && sameCollege(actor, user.College)) {
		return nil, ErrForbidden
	}
	return user, nil
}

// List returns users matching filter. Staff other than admins only see their own college.
func (s *UserService) List(ctx context.Context, actor *model.UserClaims, filter model.UserFilter) ([]*model.User, error) {
	if !actor.Role.IsStaff() {
		return nil, ErrForbidden
	}
	if actor.Role != model.RoleAdmin {
		filter.College = actor.College
	}
	if filter.Role != "" && !filter.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, filter.Role)
	}
	return s.users.List(ctx, filter)
}

// UpdateProfile changes the actor's own name and college. A student moving
// college takes their assessments along and has to sign in again, since
// their token still names the old college.
func (s *UserService) UpdateProfile(ctx context.Context, actor *model.UserClaims, req *model.UpdateProfileRequest) (*model.User, error) {
	user, err := s.find(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		user.Name = name
	}
	prevCollege := user.College
	if college := strings.TrimSpace(req.College); college != "" && college != user.College {
		// Staff are bound to the college they were created for
		if user.Role != model.RoleStudent {
			return nil, fmt.Errorf("%w: only students can change college", ErrForbidden)
		}
		user.College = college
		user.CounsellorID = ""
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	if user.College != prevCollege {
		if err := s.assessments.MoveStudent(ctx, user.ID, prevCollege, user.College); err != nil {
			return nil, err
		}
		s.broadcaster.DisconnectUser(user.ID)
		log.WithFields(log.Fields{"user_id": user.ID, "from": prevCollege, "to": user.College}).Info("student changed college")
	}
	return user, nil
}

// Create adds an account of any role (admin only)
func (s *UserService) Create(ctx context.Context, actor *model.UserClaims, req *model.CreateUserRequest) (*model.User, error) {
	if actor.Role != model.RoleAdmin {
		return nil, ErrForbidden
	}
	user, err := s.auth.newUser(ctx, req)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"user_id": user.ID, "role": user.Role, "by": actor.UserID}).Info("user created")
	return user, nil
}

// SetActive enables or disables an account (admin only)
func (s *UserService) SetActive(ctx context.Context, actor *model.UserClaims, id string, active bool) (*model.User, error) {
	if actor.Role != model.RoleAdmin {
		return nil, ErrForbidden
	}
	if id == actor.UserID && !active {
		return nil, fmt.Errorf("%w: cannot disable your own account", ErrConflict)
	}
	user, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Active = active
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	if !active {
		s.broadcaster.DisconnectUser(user.ID)
	}
	log.WithFields(log.Fields{"user_id": user.ID, "active": active, "by": actor.UserID}).Info("account status changed")
	return user, nil
}

// AssignCounsellor links a student to a counsellor of the same college
func (s *UserService) AssignCounsellor(ctx context.Context, actor *model.UserClaims, studentID, counsellorID string) (*model.User, error) {
	if actor.Role != model.RoleAdmin && actor.Role != model.RoleCollegeHead {
		return nil, ErrForbidden
	}

	student, err := s.find(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student.Role != model.RoleStudent {
		return nil, fmt.Errorf("%w: %s is not a student", ErrInvalidInput, studentID)
	}
	if !sameCollege(actor, student.College) {
		return nil, ErrForbidden
	}

	counsellor, err := s.find(ctx, counsellorID)
	if err != nil {
		return nil, err
	}
	if counsellor.Role != model.RoleCounsellor || counsellor.College != student.College {
		return nil, fmt.Errorf("%w: counsellor must work at %s", ErrInvalidInput, student.College)
	}

	student.CounsellorID = counsellor.ID
	if err := s.users.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *UserService) find(ctx context.Context, id string) (*model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// sameCollege is true for admins and for actors of the given college
func sameCollege(actor *model.UserClaims, college string) bool {
	return actor.Role == model.RoleAdmin || actor.College == college
}
