// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package apiserver provides a fake car2go server implementing the
// external collaborator contract for tests: the form-encoded login,
// the bearer-authorized me/bookings/links APIs, the JSON registration
// API, and the link deletion API. Test cases configure its fixture
// fields directly and may force failure status codes per endpoint in
// order to exercise the client failure policies.
package apiserver

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/momeni/car2go-client/pkg/core/model"
)

// Server is the fake collaborator. Its exported fields are fixture
// state which tests may inspect and modify between requests; the
// Engine serves them. It is not safe for concurrent mutation while
// serving, which suits the single-threaded client under test.
type Server struct {
	Engine *gin.Engine

	// Users maps registered emails to their passwords.
	Users map[string]string
	// Identity is returned by GET /auth/me.
	Identity model.Identity
	// Bookings is returned by GET /bookings/user.
	Bookings []model.Booking
	// Links maps an apprenti id to its link records.
	Links map[int][]model.Link

	// Force*Status, when non-zero, short-circuit the matching endpoint
	// with that status code and a {"detail": ...} document.
	ForceLoginStatus    int
	ForceMeStatus       int
	ForceBookingsStatus int
	ForceDeleteStatus   int

	// Request counters, for asserting call ordering and guard
	// behavior.
	LoginCalls    int
	MeCalls       int
	BookingsCalls int
	DeleteCalls   []int

	tokens map[string]bool
}

// New instantiates a fake server with empty fixtures.
func New() *Server {
	gin.SetMode(gin.TestMode)
	s := &Server{
		Users:  map[string]string{},
		Links:  map[int][]model.Link{},
		tokens: map[string]bool{},
	}
	e := gin.New()
	e.POST("/auth/login", s.login)
	e.POST("/auth/register", s.register)
	e.GET("/auth/me", s.me)
	e.GET("/bookings/user", s.bookings)
	e.GET("/apprenti_accompagnateur/:id", s.listLinks)
	e.DELETE("/apprenti_accompagnateur/:id", s.deleteLink)
	s.Engine = e
	return s
}

// TokenFor returns the bearer token which a successful login of email
// would produce, registering it as valid. It lets tests fabricate an
// established session without going through the login endpoint.
func (s *Server) TokenFor(email string) string {
	tok := "tok:" + email
	s.tokens[tok] = true
	return tok
}

func (s *Server) login(c *gin.Context) {
	s.LoginCalls++
	if s.ForceLoginStatus != 0 {
		fail(c, s.ForceLoginStatus)
		return
	}
	email := c.PostForm("username")
	password := c.PostForm("password")
	if p, ok := s.Users[email]; !ok || p != password {
		c.JSON(http.StatusUnauthorized, gin.H{
			"detail": "Invalid credentials",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"access_token": s.TokenFor(email),
		"token_type":   "bearer",
	})
}

func (s *Server) register(c *gin.Context) {
	form := &model.Registration{}
	if err := c.ShouldBindJSON(form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if _, ok := s.Users[form.Email]; ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": "Email already registered",
		})
		return
	}
	switch {
	case form.Role == model.RoleApprenti && form.NumeroLivret == "":
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": "Un apprenti doit avoir un numéro de livret.",
		})
		return
	case form.Role == model.RoleAccompagnateur &&
		form.NumeroPermis == "":
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": "Un accompagnateur doit avoir un numéro de permis.",
		})
		return
	}
	s.Users[form.Email] = form.Password
	c.JSON(http.StatusOK, gin.H{
		"access_token": s.TokenFor(form.Email),
		"token_type":   "bearer",
	})
}

func (s *Server) me(c *gin.Context) {
	s.MeCalls++
	if s.ForceMeStatus != 0 {
		fail(c, s.ForceMeStatus)
		return
	}
	if !s.authorized(c) {
		return
	}
	c.JSON(http.StatusOK, s.Identity)
}

func (s *Server) bookings(c *gin.Context) {
	s.BookingsCalls++
	if s.ForceBookingsStatus != 0 {
		fail(c, s.ForceBookingsStatus)
		return
	}
	if !s.authorized(c) {
		return
	}
	c.JSON(http.StatusOK, s.Bookings)
}

func (s *Server) listLinks(c *gin.Context) {
	if !s.authorized(c) {
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	ls := s.Links[id]
	if ls == nil {
		ls = []model.Link{}
	}
	c.JSON(http.StatusOK, ls)
}

func (s *Server) deleteLink(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	s.DeleteCalls = append(s.DeleteCalls, id)
	if s.ForceDeleteStatus != 0 {
		fail(c, s.ForceDeleteStatus)
		return
	}
	if !s.authorized(c) {
		return
	}
	for uid, ls := range s.Links {
		for i, l := range ls {
			if l.ID == id {
				s.Links[uid] = append(ls[:i:i], ls[i+1:]...)
				c.JSON(http.StatusOK, gin.H{
					"message": "Association supprimée avec succès",
				})
				return
			}
		}
	}
	c.JSON(http.StatusNotFound, gin.H{
		"detail": "Association non trouvée.",
	})
}

// authorized validates the bearer authorization header against the
// tokens which this fake server issued, responding with a 401 detail
// document on failure.
func (s *Server) authorized(c *gin.Context) bool {
	h := c.GetHeader("Authorization")
	tok, found := strings.CutPrefix(h, "Bearer ")
	if !found || !s.tokens[tok] {
		c.JSON(http.StatusUnauthorized, gin.H{
			"detail": "Invalid token",
		})
		return false
	}
	return true
}

func fail(c *gin.Context, status int) {
	c.JSON(status, gin.H{"detail": http.StatusText(status)})
}
