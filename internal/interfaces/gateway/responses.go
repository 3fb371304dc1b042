package gateway

import (
	"fmt"
	"net/http"
)

const headerContentType = "content-type"

func ok200() Response {
	return Response{
		StatusCode: http.StatusOK,
		Headers:    []HeaderField{{Key: headerContentType, Value: "text/html"}},
		Body:       []byte("Nothing to do"),
	}
}

func index(info string) Response {
	return Response{
		StatusCode: http.StatusOK,
		Headers:    []HeaderField{{Key: headerContentType, Value: "text/plain"}},
		Body:       []byte(info),
	}
}

func err403() Response {
	return Response{
		StatusCode: http.StatusForbidden,
		Body:       []byte("Forbidden"),
	}
}

func err404(target string) Response {
	return Response{
		StatusCode: http.StatusNotFound,
		Body:       []byte(fmt.Sprintf("Nothing found at %s\n(but still, you reached the bot!)", target)),
	}
}

func err500(err error) Response {
	return Response{
		StatusCode: http.StatusInternalServerError,
		Body:       []byte(err.Error()),
	}
}

func jsonResponse(body []byte, upgrade bool) Response {
	return Response{
		StatusCode: http.StatusOK,
		Headers:    []HeaderField{{Key: headerContentType, Value: "application/json"}},
		Body:       body,
		Upgrade:    upgrade,
	}
}
