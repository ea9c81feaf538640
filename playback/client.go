package playback

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

const defaultTimeout = 15 * time.Second

// RESTClient talks to the course API on behalf of a session.
type RESTClient struct {
	baseURL string
	sess    *Session
	timeout time.Duration
}

func NewRESTClient(baseURL string, sess *Session) *RESTClient {
	return &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		sess:    sess,
		timeout: defaultTimeout,
	}
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type progressBody struct {
	HighestPageIndex int `json:"highestPageIndex"`
}

type saveProgressBody struct {
	CourseID  string `json:"courseId"`
	PageIndex int    `json:"pageIndex"`
}

func (c *RESTClient) FetchCourse(ctx context.Context, courseIDString string) (*Course, error) {
	var course Course
	if err := c.do(ctx, fiber.MethodGet, "/courses/"+url.PathEscape(courseIDString), nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *RESTClient) GetProgress(ctx context.Context, userID, courseID string) (int, error) {
	var body progressBody
	path := "/progress/" + url.PathEscape(userID) + "/" + url.PathEscape(courseID)
	if err := c.do(ctx, fiber.MethodGet, path, nil, &body); err != nil {
		return 0, err
	}
	return body.HighestPageIndex, nil
}

// ListProgress returns courseId -> highestPageIndex for every course the user started.
func (c *RESTClient) ListProgress(ctx context.Context, userID string) (map[string]int, error) {
	out := map[string]int{}
	if err := c.do(ctx, fiber.MethodGet, "/progress/"+url.PathEscape(userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RESTClient) SaveProgress(ctx context.Context, courseID string, pageIndex int) error {
	return c.do(ctx, fiber.MethodPost, "/progress", saveProgressBody{CourseID: courseID, PageIndex: pageIndex}, nil)
}

func (c *RESTClient) ResetProgress(ctx context.Context, userID, courseID string) error {
	path := "/progress/" + url.PathEscape(userID) + "/" + url.PathEscape(courseID)
	return c.do(ctx, fiber.MethodDelete, path, nil, nil)
}

func (c *RESTClient) do(ctx context.Context, method, path string, in, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	token, err := c.sess.Token()
	if err != nil {
		return err
	}

	var a *fiber.Agent
	switch method {
	case fiber.MethodGet:
		a = fiber.Get(c.baseURL + path)
	case fiber.MethodPost:
		a = fiber.Post(c.baseURL + path)
	case fiber.MethodDelete:
		a = fiber.Delete(c.baseURL + path)
	default:
		return fmt.Errorf("unsupported method %s", method)
	}

	timeout := c.timeout
	if dl, ok := ctx.Deadline(); ok {
		if left := time.Until(dl); left < timeout {
			timeout = left
		}
	}
	a.Timeout(timeout).
		Set(fiber.HeaderAuthorization, "Bearer "+token).
		Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if in != nil {
		a.JSONEncoder(sonic.Marshal).JSON(in)
	}

	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	var env envelope
	if len(body) > 0 {
		if err := sonic.Unmarshal(body, &env); err != nil {
			return fmt.Errorf("decode %s %s: %w", method, path, err)
		}
	}

	switch {
	case code == fiber.StatusNotFound:
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	case code == fiber.StatusUnauthorized:
		c.sess.Close()
		return &HTTPError{StatusCode: code, Message: env.Message}
	case code < 200 || code >= 300:
		return &HTTPError{StatusCode: code, Message: env.Message}
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode %s %s data: %w", method, path, err)
	}
	return nil
}
