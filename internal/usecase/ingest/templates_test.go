package ingest

import (
	"strings"
	"testing"
)

func TestTemplates(t *testing.T) {
	if got := strings.Join(UpdateTemplate().Headers, ","); got != "Request No,SRS Sent Date,SRS Approval Date,Estimation Received Date,Indent Sent Date,Signed Indent Received Date,Estimated Man-hours BA,Estimated Man-hours Developers,Estimated Man-hours Tester,Development Start Date,UAT Mail Date,UAT Confirmation Date,Current Status" {
		t.Fatalf("update template = %s", got)
	}
	if got := strings.Join(ManHourTemplate().Headers, ","); got != "Request No,Stakeholder Name,Actual Man-Hours,Task Date" {
		t.Fatalf("man-hour template = %s", got)
	}
	if tpl := RequestTemplate(); len(tpl.Rows) != 0 || tpl.Headers[len(tpl.Headers)-1] != "Description" {
		t.Fatalf("request template = %+v", tpl)
	}
}
