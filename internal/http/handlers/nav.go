package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type NavItem struct {
	Label    string    `json:"label"`
	Path     string    `json:"path,omitempty"`
	Children []NavItem `json:"children,omitempty"`
}

var navMenu = []NavItem{
	{Label: "Home", Path: "/"},
	{Label: "Drivers", Children: []NavItem{
		{Label: "All Drivers", Path: "/drivers"},
		{Label: "Add Driver", Path: "/add-drivers"},
	}},
	{Label: "Vehicles", Children: []NavItem{
		{Label: "All Vehicles", Path: "/vehicles"},
		{Label: "Add Vehicle", Path: "/add-vehicles"},
	}},
	{Label: "Assign", Path: "/assign"},
	{Label: "Forms", Path: "/forms"},
	{Label: "Settings", Path: "/settings"},
	{Label: "Reports", Children: []NavItem{
		{Label: "Trips", Path: "/trips"},
		{Label: "Sessions", Path: "/sessions"},
		{Label: "AVI Tag", Path: "/avitag"},
	}},
	{Label: "Add Admin", Path: "/addadmin"},
}

// GET /api/nav
func GetNav(c *gin.Context) {
	c.JSON(http.StatusOK, navMenu)
}
