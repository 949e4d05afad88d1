package story

import "fmt"

// Chapter identifies which scene/script is currently active. Exactly one
// chapter is current at a time; transitions are always explicit.
type Chapter int

const (
	ChapterStart Chapter = iota
	ChapterIntro
	Chapter1
	Chapter2
	Chapter3
	Chapter4
	Chapter5
	ChapterEnd
)

var chapterNames = map[Chapter]string{
	ChapterStart: "start",
	ChapterIntro: "intro",
	Chapter1:     "ch1",
	Chapter2:     "ch2",
	Chapter3:     "ch3",
	Chapter4:     "ch4",
	Chapter5:     "ch5",
	ChapterEnd:   "end",
}

func (c Chapter) String() string {
	if n, ok := chapterNames[c]; ok {
		return n
	}
	return fmt.Sprintf("chapter(%d)", int(c))
}

// ParseChapter resolves a chapter name used in specs, scripts, and flags.
func ParseChapter(name string) (Chapter, error) {
	for c, n := range chapterNames {
		if n == name {
			return c, nil
		}
	}
	return ChapterStart, fmt.Errorf("story: unknown chapter %q", name)
}

// Chapters lists every chapter in story order.
func Chapters() []Chapter {
	return []Chapter{ChapterStart, ChapterIntro, Chapter1, Chapter2, Chapter3, Chapter4, Chapter5, ChapterEnd}
}
