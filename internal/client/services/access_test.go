package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/coursestore/internal/client/models"
)

func TestDecideLessonAccess(t *testing.T) {
	course5 := models.Course{ID: 5}
	course6 := models.Course{ID: 6}
	lesson := models.Lesson{Title: "Intro", Video: "https://youtube.com/embed/abc123"}
	owner := &models.User{UserName: "bob42", Courses: []int{5}}

	t.Run("owner can play", func(t *testing.T) {
		d := DecideLessonAccess(owner, course5, lesson)
		require.Equal(t, AccessPlayable, d.Kind)
		require.Equal(t, lesson.Video, d.Video, "video reference passes through unchanged")
	})

	t.Run("non-owner is restricted", func(t *testing.T) {
		d := DecideLessonAccess(owner, course6, lesson)
		require.Equal(t, AccessRestricted, d.Kind)
		require.Equal(t, RestrictedVideo, d.Video)
	})

	t.Run("admin plays everything", func(t *testing.T) {
		for _, name := range []string{"Admin", "admin", "ADMIN"} {
			d := DecideLessonAccess(&models.User{UserName: name}, course6, lesson)
			require.Equal(t, AccessPlayable, d.Kind, "userName=%s", name)
		}
	})

	t.Run("absent user routes to login", func(t *testing.T) {
		d := DecideLessonAccess(nil, course5, lesson)
		require.Equal(t, AccessLoginRequired, d.Kind)
		require.Empty(t, d.Video, "no content decision is made for anonymous viewers")
	})
}
