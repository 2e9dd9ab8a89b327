package handler

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/devfolio/internal/db"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login 处理管理员登录请求，成功后写入会话
func (a *API) Login(c *gin.Context) {
	var payload loginRequest
	if !bindJSON(c, &payload, "Invalid request body") {
		return
	}

	var user db.User
	if err := a.db.Where("username = ?", payload.Username).First(&user).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Set("username", user.Username)
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged in", "username": user.Username})
}

// Logout 处理管理员登出
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// AuthRequired 是一个简单的认证中间件
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get("user_id")
		if userID == nil {
			respondError(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// ListContactMessages returns the contact inbox, newest first, with the
// unread count alongside.
func (a *API) ListContactMessages(c *gin.Context) {
	messages, err := a.contacts.ListMessages()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}

	unread, err := a.contacts.UnreadCount()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}

	payloads := make([]gin.H, 0, len(messages))
	for i := range messages {
		msg := messages[i]
		payloads = append(payloads, gin.H{
			"id":         msg.ID,
			"name":       msg.Name,
			"email":      msg.Email,
			"subject":    msg.Subject,
			"message":    msg.Message,
			"is_read":    msg.IsRead,
			"created_at": msg.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"messages": payloads, "unread": unread})
}

// MarkContactMessagesRead flips every unread message to read. This bulk
// action is the only way a message leaves the unread state.
func (a *API) MarkContactMessagesRead(c *gin.Context) {
	updated, err := a.contacts.MarkAllRead()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to update messages")
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// UploadProfileImage 处理头像上传，保存后同步更新激活的个人信息记录
func (a *API) UploadProfileImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "No image file provided")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "Only image files are allowed")
		return
	}

	if err := os.MkdirAll(a.uploadDir, 0o755); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create upload directory")
		return
	}

	// 生成唯一文件名
	ext := filepath.Ext(file.Filename)
	newFilename := fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)
	filePath := filepath.Join(a.uploadDir, newFilename)

	if err := c.SaveUploadedFile(file, filePath); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to save file")
		return
	}

	fileURL := fmt.Sprintf("%s/%s", strings.TrimRight(a.uploadURL, "/"), newFilename)

	if err := a.db.Model(&db.PersonalInfo{}).
		Where("is_active = ?", true).
		Update("profile_image", fileURL).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to update profile image")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": fileURL})
}
