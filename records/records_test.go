package records_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-collection-idioms/records"
)

func TestStudentString(t *testing.T) {
	s := records.NewStudent("sammidev", "200311")
	if got := s.String(); got != "Student(name=sammidev, nim=200311)" {
		t.Fatalf("String() = %q", got)
	}
}

func TestStudentUpperKeepsIdentifier(t *testing.T) {
	s := records.NewStudent("sammidev ganteng", "20")
	s.Upper()
	if s.Name != "SAMMIDEV GANTENG" || s.NIM() != "20" {
		t.Fatalf("after Upper: %s", s)
	}
	s.Rename("dev")
	if s.Name != "dev" {
		t.Fatalf("after Rename: %s", s)
	}
}

func TestStudentNIMNumber(t *testing.T) {
	n, err := records.NewStudent("sam", "120").NIMNumber()
	if err != nil || n != 120 {
		t.Fatalf("NIMNumber = %d, %v", n, err)
	}
}

func TestStudentNIMNumberMalformed(t *testing.T) {
	_, err := records.NewStudent("sam", "12a").NIMNumber()
	if !errors.Is(err, records.ErrMalformedIdentifier) {
		t.Fatalf("err = %v; want ErrMalformedIdentifier", err)
	}
}

func TestStudentIs(t *testing.T) {
	s := records.NewStudent("sam", "200311")
	if !s.Is("sam", "200311") || s.Is("sam", "200312") || s.Is("dev", "200311") {
		t.Fatal("Is mismatch")
	}
}

func TestPupilHobbiesCopied(t *testing.T) {
	src := []string{"ngoding1", "renang1"}
	p := records.NewPupil("sammidev1", src...)
	src[0] = "changed"
	h := p.Hobbies()
	h[1] = "changed"
	if got := p.String(); got != "Pupil(name=sammidev1, hobbies=[ngoding1, renang1])" {
		t.Fatalf("String() = %q", got)
	}
	if p.Name() != "sammidev1" {
		t.Fatalf("Name() = %q", p.Name())
	}
}

func TestHouseIsBuilding(t *testing.T) {
	var b records.Building = records.House{}
	h, ok := b.(records.House)
	if !ok || h.String() != "House" {
		t.Fatalf("assertion = %v, %v", h, ok)
	}
}
