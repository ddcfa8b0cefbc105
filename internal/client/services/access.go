package services

import (
	"github.com/dmitrijs2005/coursestore/internal/client/models"
	"github.com/dmitrijs2005/coursestore/internal/common"
)

// RestrictedVideo is the sentinel that replaces a lesson's video reference
// when the viewer may not play it. The presentation layer renders a locked
// state instead of embedding the sentinel.
const RestrictedVideo = "restricted"

// AccessKind classifies a lesson-access decision.
type AccessKind int

const (
	// AccessLoginRequired: no user present; route to sign-in, no content
	// decision is made.
	AccessLoginRequired AccessKind = iota
	// AccessPlayable: the viewer owns the course or is the admin; the video
	// reference passes through unchanged.
	AccessPlayable
	// AccessRestricted: signed in but not entitled; the video reference is
	// replaced with RestrictedVideo.
	AccessRestricted
)

// AccessDecision is the outcome of the lesson access policy.
type AccessDecision struct {
	Kind  AccessKind
	Video string
}

// DecideLessonAccess is the content-access policy: a pure function of the
// session state at the moment of invocation. Ownership changes afterwards
// do not retroactively affect a decision already handed out.
func DecideLessonAccess(user *models.User, course models.Course, lesson models.Lesson) AccessDecision {
	if user == nil {
		return AccessDecision{Kind: AccessLoginRequired}
	}
	if user.Owns(course.ID) || common.IsAdmin(user.UserName) {
		return AccessDecision{Kind: AccessPlayable, Video: lesson.Video}
	}
	return AccessDecision{Kind: AccessRestricted, Video: RestrictedVideo}
}
