package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

type ConnectionRequestBody struct {
	Email string `json:"email"`
}

var connectionRequestSchema = z.Struct(z.Shape{
	"Email": z.String().Required().Email(),
})

func (rs *RestfulServer) ListConnectionRequests(c *gin.Context) {
	requests, err := rs.Companion.Connection.ConnectionRequests(c.Request.Context(), currentUser(c))
	respond(c, requests, err)
}

func (rs *RestfulServer) SendConnectionRequest(c *gin.Context) {
	var req ConnectionRequestBody
	if err := connectionRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	request, err := rs.Companion.Connection.SendConnectionRequest(c.Request.Context(), currentUser(c), req.Email)
	respondCreated(c, request, err)
}

func (rs *RestfulServer) AcceptConnectionRequest(c *gin.Context) {
	request, err := rs.Companion.Connection.AcceptConnectionRequest(c.Request.Context(), currentUser(c), c.Param("id"))
	respond(c, request, err)
}

func (rs *RestfulServer) RejectConnectionRequest(c *gin.Context) {
	request, err := rs.Companion.Connection.RejectConnectionRequest(c.Request.Context(), currentUser(c), c.Param("id"))
	respond(c, request, err)
}

func (rs *RestfulServer) PendingRequests(c *gin.Context) {
	requests, err := rs.Companion.Connection.PendingRequests(c.Request.Context(), currentUser(c))
	respond(c, requests, err)
}

func (rs *RestfulServer) ConnectedUsers(c *gin.Context) {
	users, err := rs.Companion.Connection.ConnectedUsers(c.Request.Context(), currentUser(c))
	respond(c, users, err)
}
