package httpapi

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/lucaflorio/go-blog-api/internal/auth"
	"github.com/lucaflorio/go-blog-api/internal/blog"
	"github.com/lucaflorio/go-blog-api/internal/config"
)

// Logger is the minimal logging surface the transport needs.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

type defLogger struct{}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] HTTP "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] HTTP "+newline(format), args...)
}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] HTTP "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}

// Server wires the domain services into the fiber app.
type Server struct {
	cfg      config.Config
	tokens   *auth.TokenService
	resolver *auth.Resolver
	users    *blog.Users
	posts    *blog.Posts
	comments *blog.Comments
	logger   Logger
}

// NewServer returns a new Server.
func NewServer(cfg config.Config, tokens *auth.TokenService, resolver *auth.Resolver, users *blog.Users, posts *blog.Posts, comments *blog.Comments) *Server {
	return &Server{
		cfg:      cfg,
		tokens:   tokens,
		resolver: resolver,
		users:    users,
		posts:    posts,
		comments: comments,
		logger:   defLogger{},
	}
}

func (s *Server) WithLogger(logger Logger) *Server {
	s.logger = logger
	return s
}

// App builds the fiber application with every route registered.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "go-blog-api",
		ErrorHandler: NewErrorHandler(s.cfg.Debug, s.logger),
	})

	guard := s.RequireSession()
	api := app.Group("/api")

	ath := api.Group("/auth")
	ath.Post("/signup", s.SignUp)
	ath.Post("/signin", s.SignIn)
	ath.Post("/google", s.Google)

	usr := api.Group("/user")
	usr.Post("/signout", s.SignOut)
	usr.Get("/getusers", guard, s.GetUsers)
	usr.Put("/update/:userId", guard, s.UpdateUser)
	usr.Delete("/delete/:userId", guard, s.DeleteUser)
	usr.Get("/:userId", s.GetUser)

	pst := api.Group("/post")
	pst.Post("/create", guard, s.CreatePost)
	pst.Get("/getposts", s.GetPosts)
	pst.Put("/updatepost/:postId/:userId", guard, s.UpdatePost)
	pst.Delete("/deletepost/:postId/:userId", guard, s.DeletePost)

	cmt := api.Group("/comment")
	cmt.Post("/create", guard, s.CreateComment)
	cmt.Get("/getPostComments/:postId", s.GetPostComments)
	cmt.Put("/likeComment/:commentId", guard, s.LikeComment)
	cmt.Put("/editComment/:commentId", guard, s.EditComment)
	cmt.Delete("/deleteComment/:commentId", guard, s.DeleteComment)
	cmt.Get("/getComments", guard, s.GetComments)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	return app
}
