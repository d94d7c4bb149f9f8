package controllers

import (
	"strconv"

	"lafamilia/models"
	"lafamilia/services"

	"github.com/gin-gonic/gin"
)

type DirectoryController struct {
	directory *services.DirectoryService
}

func NewDirectoryController(directory *services.DirectoryService) *DirectoryController {
	return &DirectoryController{directory: directory}
}

func loadsParam(c *gin.Context) int {
	loads, _ := strconv.Atoi(c.DefaultQuery("loads", "0"))
	return loads
}

// @Summary List members
// @Description Member directory with search, filters and sort. loads is the number of "load more" clicks: 6 shown initially, 3 more per load, at most 18.
// @Tags Members
// @Produce json
// @Param search query string false "Search term"
// @Param category query string false "Category"
// @Param location query string false "Location"
// @Param size query string false "Business size"
// @Param sort query string false "popularity-asc, popularity-desc, alphabetical-asc, alphabetical-desc, newest, membership-asc, membership-desc"
// @Param loads query int false "Load more count" default(0)
// @Success 200 {object} models.Response
// @Failure 502 {object} models.ErrorResponse
// @Router /members [get]
func (ctrl *DirectoryController) ListMembers(c *gin.Context) {
	var q models.MemberQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	batch, err := ctrl.directory.Members(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Members retrieved", "data": batch})
}

// @Summary Member filter options
// @Tags Members
// @Produce json
// @Success 200 {object} models.Response
// @Router /members/facets [get]
func (ctrl *DirectoryController) MemberFacets(c *gin.Context) {
	facets, err := ctrl.directory.MemberFacets(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Member facets retrieved", "data": facets})
}

// @Summary Member spotlights
// @Description Random Gold and Silver members
// @Tags Members
// @Produce json
// @Param count query int false "Number of spotlights" default(3)
// @Success 200 {object} models.Response
// @Router /members/spotlights [get]
func (ctrl *DirectoryController) Spotlights(c *gin.Context) {
	count, _ := strconv.Atoi(c.DefaultQuery("count", "3"))

	members, err := ctrl.directory.Spotlights(c.Request.Context(), count)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Spotlights retrieved", "data": members})
}

// @Summary Get member
// @Tags Members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /members/{id} [get]
func (ctrl *DirectoryController) GetMember(c *gin.Context) {
	member, err := ctrl.directory.Member(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Member retrieved", "data": member})
}

// @Summary List clubs
// @Description Clubs in batches of 6 per load
// @Tags Clubs
// @Produce json
// @Param search query string false "Search term"
// @Param sort query string false "name-asc, name-desc, members-desc, members-asc"
// @Param loads query int false "Load more count" default(0)
// @Success 200 {object} models.Response
// @Router /clubs [get]
func (ctrl *DirectoryController) ListClubs(c *gin.Context) {
	var q models.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	batch, err := ctrl.directory.Clubs(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Clubs retrieved", "data": batch})
}

// @Summary Club search suggestions
// @Tags Clubs
// @Produce json
// @Param q query string true "Search term, at least two characters"
// @Success 200 {object} models.Response
// @Router /clubs/suggestions [get]
func (ctrl *DirectoryController) ClubSuggestions(c *gin.Context) {
	names, err := ctrl.directory.ClubSuggestions(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Suggestions retrieved", "data": names})
}

// @Summary Get club
// @Tags Clubs
// @Produce json
// @Param id path string true "Club ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /clubs/{id} [get]
func (ctrl *DirectoryController) GetClub(c *gin.Context) {
	club, err := ctrl.directory.Club(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Club retrieved", "data": club})
}

// @Summary List events
// @Tags Events
// @Produce json
// @Param search query string false "Search term"
// @Param type query string false "Event type keyword"
// @Success 200 {object} models.Response
// @Router /events [get]
func (ctrl *DirectoryController) ListEvents(c *gin.Context) {
	var q models.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	events, err := ctrl.directory.Events(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Events retrieved", "data": events})
}

// @Summary Get event
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /events/{id} [get]
func (ctrl *DirectoryController) GetEvent(c *gin.Context) {
	event, err := ctrl.directory.Event(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Event retrieved", "data": event})
}

// @Summary List blog posts
// @Tags Blog
// @Produce json
// @Param search query string false "Search term"
// @Param category query string false "Category"
// @Success 200 {object} models.Response
// @Router /blog [get]
func (ctrl *DirectoryController) ListBlogPosts(c *gin.Context) {
	var q models.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	posts, err := ctrl.directory.BlogPosts(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Blog posts retrieved", "data": posts})
}

// @Summary Get blog post
// @Tags Blog
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /blog/{id} [get]
func (ctrl *DirectoryController) GetBlogPost(c *gin.Context) {
	post, err := ctrl.directory.BlogPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Blog post retrieved", "data": post})
}

// @Summary List news
// @Tags News
// @Produce json
// @Param featured query bool false "Only articles featured on the homepage"
// @Success 200 {object} models.Response
// @Router /news [get]
func (ctrl *DirectoryController) ListNews(c *gin.Context) {
	featured, _ := strconv.ParseBool(c.DefaultQuery("featured", "false"))

	articles, err := ctrl.directory.News(c.Request.Context(), featured)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "News retrieved", "data": articles})
}

// @Summary Get news article
// @Tags News
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /news/{id} [get]
func (ctrl *DirectoryController) GetNewsArticle(c *gin.Context) {
	article, err := ctrl.directory.NewsArticle(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "News article retrieved", "data": article})
}

// @Summary Board of directors
// @Tags About
// @Produce json
// @Success 200 {object} models.Response
// @Router /board [get]
func (ctrl *DirectoryController) Board(c *gin.Context) {
	board, err := ctrl.directory.Board(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Board retrieved", "data": board})
}

// @Summary Discover items
// @Tags About
// @Produce json
// @Success 200 {object} models.Response
// @Router /discover [get]
func (ctrl *DirectoryController) Discover(c *gin.Context) {
	items, err := ctrl.directory.Discover(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Discover items retrieved", "data": items})
}

// @Summary List member awards
// @Description Awards across all members in batches of 9 per load
// @Tags Awards
// @Produce json
// @Param search query string false "Search term"
// @Param year query string false "Award year, all for every year"
// @Param memberId query string false "Member ID"
// @Param sort query string false "year-desc, year-asc, member-name, award-name"
// @Param loads query int false "Load more count" default(0)
// @Success 200 {object} models.Response
// @Router /awards [get]
func (ctrl *DirectoryController) ListAwards(c *gin.Context) {
	var q models.AwardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	batch, err := ctrl.directory.Awards(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Awards retrieved", "data": batch})
}

// @Summary Award search suggestions
// @Description Member and award names matching q, at most 5
// @Tags Awards
// @Produce json
// @Param q query string true "Search term, at least two characters"
// @Success 200 {object} models.Response
// @Router /awards/suggestions [get]
func (ctrl *DirectoryController) AwardSuggestions(c *gin.Context) {
	names, err := ctrl.directory.AwardSuggestions(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Suggestions retrieved", "data": names})
}

// @Summary Award filter options
// @Tags Awards
// @Produce json
// @Success 200 {object} models.Response
// @Router /awards/facets [get]
func (ctrl *DirectoryController) AwardFacets(c *gin.Context) {
	facets, err := ctrl.directory.AwardFacets(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Award facets retrieved", "data": facets})
}

// @Summary List member reviews
// @Description Reviews across all members, newest first, 6 per load
// @Tags Reviews
// @Produce json
// @Param loads query int false "Load more count" default(0)
// @Success 200 {object} models.Response
// @Router /reviews [get]
func (ctrl *DirectoryController) ListReviews(c *gin.Context) {
	batch, err := ctrl.directory.Reviews(c.Request.Context(), loadsParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Reviews retrieved", "data": batch})
}
