package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// User-facing messages. Store-layer details never reach the client.
const (
	errMsgAuthRequired     = "Authentication required"
	errMsgDatabase         = "Database error"
	errMsgMethodNotAllowed = "Method not allowed"
	errMsgMissingFields    = "Title, content, and category are required"
	errMsgMissingID        = "Article ID is required"
	errMsgNoFields         = "No fields to update"
	errMsgNotFound         = "Article not found"
	errMsgBadFeatured      = "Invalid featured value"
	errInvalidBodyPref     = "invalid body: "

	msgArticleCreated = "Article created successfully"
	msgArticleUpdated = "Article updated successfully"
	msgArticleDeleted = "Article deleted successfully"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// Request DTO for create/update. Pointers keep "absent" distinguishable
// from "empty", and Featured only binds to a genuine JSON boolean.
type articlePayload struct {
	ID       *int    `json:"id"`
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	Featured *bool   `json:"featured"`
}

// ArticleRequest is an exported model for Swagger docs of the article payload.
type ArticleRequest struct {
	// Required on update/delete; ignored on create
	ID int `json:"id,omitempty" example:"3"`
	// Required on create; optional on update
	Title string `json:"title,omitempty" example:"Building a portfolio backend"`
	// Required on create; optional on update
	Content string `json:"content,omitempty" example:"Full article body"`
	// Required on create; optional on update
	Category string `json:"category,omitempty" example:"tech"`
	// Defaults to false on create
	Featured bool `json:"featured,omitempty" example:"true"`
}

// respondArticleError maps service errors to the HTTP taxonomy.
func (h *Handler) respondArticleError(c *gin.Context, err error, logKey string) {
	switch {
	case errors.Is(err, service.ErrMissingArticleFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": errMsgMissingFields})
	case errors.Is(err, service.ErrMissingArticleID):
		c.JSON(http.StatusBadRequest, gin.H{"error": errMsgMissingID})
	case errors.Is(err, service.ErrNoUpdatableFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": errMsgNoFields})
	case errors.Is(err, service.ErrArticleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": errMsgNotFound})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errMsgDatabase, logKey, err)
	}
}

// sessionUsername returns the username placed in the context by sessionRequired.
func sessionUsername(c *gin.Context) string {
	if v, ok := c.Get(ctxUsernameKey); ok {
		if name, ok := v.(string); ok {
			return name
		}
	}
	return ""
}

// @Summary      List articles
// @Description  Public. Optional equality filters; newest first.
// @Tags         articles
// @Produce      json
// @Param        category  query  string  false  "Category filter"
// @Param        featured  query  bool    false  "Featured filter (true/false)"
// @Success      200  {array}   models.Article
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/articles [get]
func (h *Handler) listArticles(c *gin.Context) {
	var filter models.ArticleFilter

	if category, ok := c.GetQuery("category"); ok && category != "" {
		filter.Category = &category
	}
	if raw, ok := c.GetQuery("featured"); ok {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errMsgBadFeatured})
			return
		}
		filter.Featured = &featured
	}

	articles, err := h.services.Articles.List(c.Request.Context(), filter)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errMsgDatabase, "articles_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// @Summary      Create article
// @Description  Author is taken from the session, never from the payload.
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        body  body  ArticleRequest  true  "Article payload"
// @Success      200  {object}  map[string]interface{}  "success, message, article"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/articles [post]
func (h *Handler) createArticle(c *gin.Context) {
	var req articlePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	article, err := h.services.Articles.Create(c.Request.Context(), service.CreateArticleInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Featured: req.Featured,
		Author:   sessionUsername(c),
	})
	if err != nil {
		h.respondArticleError(c, err, "article_create_failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": msgArticleCreated,
		"article": article,
	})
}

// @Summary      Update article
// @Description  Partial update: absent fields keep their stored values.
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        body  body  ArticleRequest  true  "Patch payload (id required)"
// @Success      200  {object}  map[string]interface{}  "success, message, article"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/articles [put]
func (h *Handler) updateArticle(c *gin.Context) {
	var req articlePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	article, err := h.services.Articles.Update(c.Request.Context(), service.UpdateArticleInput{
		ID:       req.ID,
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Featured: req.Featured,
	})
	if err != nil {
		h.respondArticleError(c, err, "article_update_failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": msgArticleUpdated,
		"article": article,
	})
}

// @Summary      Delete article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        body  body  ArticleRequest  true  "Payload with id"
// @Success      200  {object}  map[string]interface{}  "success, message"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/articles [delete]
func (h *Handler) deleteArticle(c *gin.Context) {
	var req articlePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	if err := h.services.Articles.Delete(c.Request.Context(), req.ID); err != nil {
		h.respondArticleError(c, err, "article_delete_failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": msgArticleDeleted,
	})
}
