package router

import (
	"github.com/devfolio/internal/handler"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, sessionSecret string) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("devfolio_session", store))

	// 公开 API 路由
	public := r.Group("/api")
	{
		public.GET("/personal-info", api.GetPersonalInfo)
		public.GET("/about", api.GetAbout)
		public.GET("/social-links", api.GetSocialLinks)
		public.GET("/projects", api.GetProjects)
		public.GET("/skills", api.GetSkills)
		public.GET("/experience", api.GetExperience)
		public.GET("/certifications", api.GetCertifications)
		public.GET("/education", api.GetEducation)
		public.GET("/portfolio-summary", api.GetPortfolioSummary)
		public.GET("/health", api.HealthCheck)
		public.POST("/contact", api.SubmitContact)
	}

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.POST("/login", api.Login)
		admin.POST("/logout", api.Logout)

		// 需要认证的后台路由
		auth := admin.Group("/api")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/messages", api.ListContactMessages)
			auth.POST("/messages/read", api.MarkContactMessagesRead)
			auth.POST("/upload", api.UploadProfileImage)
		}
	}

	return r
}
