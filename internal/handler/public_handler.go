package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const appInfo = `Placebook helps you remember interesting places you come across in everyday life.
Save a location from GPS coordinates or an address, file it under a category, add a note and share it with friends.
Main features
Saving locations: add a place by coordinates or by address; the missing side is looked up for you.
Categories and notes: tag places as a cafe, a shop, a park and keep a note with each one.
Nearest place: find the closest of your saved places, optionally within one category.
Sharing: give a friend access to a saved place, or browse the public places of your friends.
Premium: free plan accounts keep up to 10 places, premium accounts have no limit.`

// GetAppInfo godoc
// @Summary      Get application info
// @Description  Returns a plain text description of the application.
// @Tags         public
// @Produce      plain
// @Success      200  {string}  string
// @Router       /public/info [get]
func GetAppInfo(c *gin.Context) {
	c.String(http.StatusOK, appInfo)
}
