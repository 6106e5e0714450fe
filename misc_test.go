package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/pierson-davis/on-brand-ios-sub000/config"
	"github.com/pierson-davis/on-brand-ios-sub000/server"
)

type M map[string]interface{}

var (
	printResp = flag.Bool("pr", false, "print responses")
	keepTmp   = flag.Bool("k", false, "keep tmp dir")

	ts  *httptest.Server
	srv *server.Server
)

func TestMain(m *testing.M) {
	log.SetFlags(log.Lshortfile | log.Ltime)
	gin.SetMode(gin.TestMode)

	var code int = 1
	defer func() { os.Exit(code) }()

	cfg, err := config.New("config/config.json")
	panicIf(err)

	cfg.Sandbox = true // always set it to true just in case

	tmp, err := os.MkdirTemp("", "onbrand-srv")
	panicIf(err)
	cfg.DBPath = tmp + "/"

	if *keepTmp {
		log.Println("tmp dir:", cfg.DBPath)
	} else {
		defer os.RemoveAll(tmp) // clean up
	}

	// keep the AI key out of the picture; aiStatus should report unready
	cfg.AI.Mode = "development"
	cfg.AI.DevKeyFile = filepath.Join(tmp, "no-such-key-file")
	cfg.AI.OverrideFile = ""
	cfg.AI.KeystorePath = ""

	r := gin.New()
	srv, err = server.New(cfg, r)
	panicIf(err)
	defer srv.Close()

	ts = httptest.NewServer(r)
	defer ts.CloseClientConnections()
	defer ts.Close()

	code = m.Run()
}

func panicIf(err error) {
	if err != nil {
		log.Panicln(err)
	}
}

type reply struct {
	Status int
	Value  []byte
}

func R(status int, v interface{}) (r reply) {
	r.Status = status
	switch v := v.(type) {
	case []byte:
		r.Value = v
	case string:
		r.Value = []byte(v)
	case nil:
	default:
		r.Value, _ = json.Marshal(v)
	}
	return
}

type testReq struct {
	method, path string
	data         interface{}
	expected     reply
}

func (tr *testReq) String() string {
	return tr.method + " " + tr.path
}

func (tr *testReq) run(t *testing.T) []byte {
	t.Helper()

	var body io.Reader
	if tr.data != nil {
		switch d := tr.data.(type) {
		case []byte:
			body = bytes.NewReader(d)
		case string:
			body = strings.NewReader(d)
		default:
			b, err := json.Marshal(d)
			if err != nil {
				t.Fatalf("%s: %v", tr.String(), err)
			}
			body = bytes.NewReader(b)
		}
	}

	req, err := http.NewRequest(tr.method, ts.URL+"/api/v1"+tr.path, body)
	if err != nil {
		t.Fatalf("%s: %v", tr.String(), err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s: %v", tr.String(), err)
	}
	defer resp.Body.Close()

	got, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("%s: %v", tr.String(), err)
	}
	if *printResp {
		t.Logf("%s: %s", tr.String(), got)
	}

	if resp.StatusCode != tr.expected.Status {
		t.Fatalf("%s: wanted %d, got %d: %s", tr.String(), tr.expected.Status, resp.StatusCode, got)
	}
	if tr.expected.Value != nil {
		if err := compareRes(got, tr.expected.Value); err != nil {
			t.Fatalf("%s: %v", tr.String(), err)
		}
	}
	return got
}

// compareRes checks that every key in b appears in a with the same value;
// a may carry extra keys like ids and timestamps.
func compareRes(a, b []byte) error {
	var am, bm M
	if err := json.Unmarshal(a, &am); err != nil {
		return fmt.Errorf("%s: %v", a, err)
	}
	if err := json.Unmarshal(b, &bm); err != nil {
		return fmt.Errorf("%s: %v", b, err)
	}
	for k, want := range bm {
		got, ok := am[k]
		if !ok {
			return fmt.Errorf("missing key %q in %s", k, a)
		}
		if fmt.Sprint(got) != fmt.Sprint(want) {
			return fmt.Errorf("key %q: %v != %v (%s)", k, got, want, a)
		}
	}
	return nil
}
