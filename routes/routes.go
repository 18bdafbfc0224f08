package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mojalektira/backend/controllers"
	"github.com/mojalektira/backend/middleware"
	"github.com/mojalektira/backend/ws"
)

func SetupRouter(r *gin.Engine, db *gorm.DB, store middleware.SessionStore) *gin.Engine {
	auth := controllers.NewAuthController(store)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")
	api.Use(
		middleware.DBMiddleware(db),
		middleware.SessionMiddleware(store),
		middleware.APIRateLimiter(),
	)

	// Autentikacija
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", auth.Register)
		authGroup.POST("/login", middleware.LoginRateLimiter(), auth.Login)
		authGroup.POST("/logout", auth.Logout)
		authGroup.GET("/me", auth.Me)
		authGroup.POST("/change-password", middleware.RequireAuth(), auth.ChangePassword)
	}
	api.GET("/csrf-token", auth.CSRFToken)

	// Javni dio kataloga
	api.GET("/books", controllers.GetBooks)
	api.GET("/books/:id", controllers.GetBookDetail)
	api.GET("/quizzes/:id", controllers.GetQuizDetail)
	api.GET("/leaderboard", controllers.GetLeaderboard)
	api.GET("/partners", controllers.GetPartners)
	api.GET("/challenges", controllers.GetChallenges)
	api.GET("/blog", controllers.GetBlogPosts)
	api.GET("/blog/:slug", controllers.GetBlogPostBySlug)
	api.GET("/recommendations", controllers.GetRecommendations)
	api.POST("/contact", controllers.CreateContactMessage)

	// Prijavljeni korisnici
	user := api.Group("")
	user.Use(middleware.RequireAuth())
	{
		user.POST("/quiz-results", controllers.SubmitQuizResult)
		user.GET("/quiz-results/mine", controllers.GetMyQuizResults)
		user.GET("/subscription/status", controllers.GetSubscriptionStatus)
		user.POST("/recommendations", controllers.CreateRecommendation)
		user.POST("/borrowings", controllers.BorrowBook)
		user.PUT("/borrowings/:id/return", controllers.ReturnBook)
		user.GET("/borrowings/mine", controllers.GetMyBorrowings)
	}

	// Roditeljski nalozi
	parent := api.Group("/parent")
	parent.Use(middleware.RequireAuth())
	{
		parent.POST("/children/link", controllers.LinkChild)
		parent.GET("/children", controllers.GetMyChildren)
	}

	// Nastavnici
	teacher := api.Group("/teacher")
	teacher.Use(middleware.RequireTeacher())
	{
		teacher.GET("/students", controllers.GetMyStudents)
		teacher.POST("/students", controllers.CreateStudent)
		teacher.PUT("/students/:id/password", controllers.ResetStudentPassword)
		teacher.POST("/bonus-points", controllers.AwardBonusPoints)
		teacher.GET("/students/roster.csv", controllers.StudentRosterCSV)
		teacher.GET("/students/roster.xlsx", controllers.ExportRosterXLSX)
		teacher.GET("/class-challenges", controllers.GetClassChallenges)
		teacher.POST("/class-challenges", controllers.CreateClassChallenge)
		teacher.DELETE("/class-challenges/:id", controllers.DeleteClassChallenge)
	}

	// Školski administratori
	school := api.Group("/school")
	school.Use(middleware.RequireSchoolAdmin())
	{
		school.GET("/teachers", controllers.GetMyTeachers)
		school.POST("/teachers", controllers.CreateTeacher)
	}

	// Admin: CRUD nad katalogom i korisnicima, uvoz i izvoz
	admin := api.Group("/admin")
	admin.Use(middleware.RequireAdmin(), middleware.RequireCSRF())
	{
		admin.POST("/books", controllers.CreateBook)
		admin.PUT("/books/:id", controllers.UpdateBook)
		admin.DELETE("/books/:id", controllers.DeleteBook)

		admin.GET("/quizzes", controllers.GetQuizzes)
		admin.POST("/quizzes", controllers.CreateQuiz)
		admin.DELETE("/quizzes/:id", controllers.DeleteQuiz)

		admin.POST("/questions", controllers.CreateQuestion)
		admin.PUT("/questions/:id", controllers.UpdateQuestion)
		admin.DELETE("/questions/:id", controllers.DeleteQuestion)

		admin.GET("/users", controllers.GetUsers)
		admin.PUT("/users/:id", controllers.UpdateUser)
		admin.DELETE("/users/:id", controllers.DeleteUser)
		admin.PUT("/users/:id/approve", controllers.ApproveUser)

		admin.POST("/partners", controllers.CreatePartner)
		admin.PUT("/partners/:id", controllers.UpdatePartner)
		admin.DELETE("/partners/:id", controllers.DeletePartner)

		admin.POST("/challenges", controllers.CreateChallenge)
		admin.DELETE("/challenges/:id", controllers.DeleteChallenge)

		admin.POST("/blog", controllers.CreateBlogPost)
		admin.PUT("/blog/:id", controllers.UpdateBlogPost)
		admin.DELETE("/blog/:id", controllers.DeleteBlogPost)

		admin.GET("/contact-messages", controllers.GetContactMessages)
		admin.DELETE("/contact-messages/:id", controllers.DeleteContactMessage)

		admin.DELETE("/recommendations/:id", controllers.DeleteRecommendation)

		admin.POST("/import/books", controllers.ImportBooks)
		admin.POST("/import/quizzes", controllers.ImportQuizzes)
		admin.GET("/templates/books", controllers.BooksTemplate)
		admin.GET("/templates/quizzes", controllers.QuizzesTemplate)
		admin.GET("/export/users.xlsx", controllers.ExportUsersXLSX)
		admin.GET("/export/results.xlsx", controllers.ExportResultsXLSX)
	}

	upload := api.Group("/upload")
	upload.Use(middleware.RequireAdmin(), middleware.RequireCSRF())
	{
		upload.POST("/cover", controllers.UploadCover)
		upload.POST("/book", controllers.UploadBook)
		upload.POST("/logo", controllers.UploadLogo)
	}

	r.GET("/ws/leaderboard", ws.HandleLeaderboardWebSocket)

	return r
}
