package pages

import (
	"bytes"
	"fmt"
	"html/template"
)

// PageData is what a landing page needs to post back to the status API.
type PageData struct {
	PageIndex int64
	Filename  string
	UpdateURL string
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Page {{.PageIndex}}</title>
</head>
<body>
  <form id="messageForm" data-page-index="{{.PageIndex}}">
    <label for="sender">From</label>
    <input type="text" id="sender" name="sender" required>
    <label for="receiver">To</label>
    <input type="text" id="receiver" name="receiver" required>
    <label for="content">Message</label>
    <textarea id="content" name="content" required></textarea>
    <button type="submit">Send</button>
  </form>
  <p id="result"></p>
  <script>
    document.getElementById("messageForm").addEventListener("submit", async (event) => {
      event.preventDefault();
      const body = {
        pageIndex: {{.PageIndex}},
        sender: document.getElementById("sender").value,
        receiver: document.getElementById("receiver").value,
        content: document.getElementById("content").value,
      };
      const result = document.getElementById("result");
      try {
        const response = await fetch({{.UpdateURL}}, {
          method: "POST",
          headers: {"Content-Type": "application/json"},
          body: JSON.stringify(body),
        });
        const data = await response.json();
        result.textContent = data.success ? "Sent" : "Failed, please retry";
      } catch (err) {
        result.textContent = "Server unreachable";
      }
    });
  </script>
</body>
</html>
`))

// Render returns the HTML document for one page.
func Render(data PageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render page %d: %w", data.PageIndex, err)
	}
	return buf.Bytes(), nil
}
