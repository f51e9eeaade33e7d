package response

import "github.com/gin-gonic/gin"

// Canonical user-facing messages. Existing clients match on these strings,
// so they stay verbatim.
const (
	MsgMissingParams = "You are missing required parameters."
	MsgServerError   = "Something went wrong. If you are receiving this message please contact the maintainer."
	MsgForbidden     = "You do not have permission to alter your id or api key. Contact support if you wish to do so."
	MsgUpdated       = "Successfully updated."
)

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"message": message,
	})
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"message": message,
	})
}

// ErrorWithDetails attaches the underlying error for operators. Handlers only
// use it for unexpected failures where the message itself is generic.
func ErrorWithDetails(c *gin.Context, statusCode int, message string, err error) {
	c.JSON(statusCode, gin.H{
		"message": message,
		"error":   err.Error(),
	})
}
