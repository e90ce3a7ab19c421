package model

import (
	"testing"
	"time"
)

func topics(completed ...bool) []Topic {
	out := make([]Topic, len(completed))
	for i, done := range completed {
		out[i] = Topic{TopicNumber: i + 1, Title: "t", IsCompleted: done}
	}
	return out
}

func TestRoadmapRecalculate(t *testing.T) {
	roadmap := Roadmap{
		Phases: PhaseList{
			{PhaseNumber: 1, Topics: topics(true, false, true)},
			{PhaseNumber: 2, Topics: topics(false, false)},
		},
	}

	roadmap.Recalculate(time.Now())

	if roadmap.Progress.TotalTopics != 5 {
		t.Errorf("expected totalTopics 5, got %d", roadmap.Progress.TotalTopics)
	}
	if roadmap.Progress.CompletedTopics != 2 {
		t.Errorf("expected completedTopics 2, got %d", roadmap.Progress.CompletedTopics)
	}
	if roadmap.Progress.CompletionPercentage != 40 {
		t.Errorf("expected completionPercentage 40, got %d", roadmap.Progress.CompletionPercentage)
	}
}

func TestRoadmapRecalculateEmpty(t *testing.T) {
	roadmap := Roadmap{
		// Stale derived values must be overwritten, not divided by zero.
		Progress: RoadmapProgress{CompletedTopics: 3, TotalTopics: 9, CompletionPercentage: 33},
	}

	roadmap.Recalculate(time.Now())

	if roadmap.Progress.TotalTopics != 0 || roadmap.Progress.CompletedTopics != 0 {
		t.Errorf("expected zeroed counts, got %+v", roadmap.Progress)
	}
	if roadmap.Progress.CompletionPercentage != 0 {
		t.Errorf("expected completionPercentage 0 with no topics, got %d", roadmap.Progress.CompletionPercentage)
	}
}

func TestRoadmapRecalculateRounding(t *testing.T) {
	roadmap := Roadmap{
		Phases: PhaseList{{Topics: topics(true, false, false)}},
	}

	roadmap.Recalculate(time.Now())

	// 1/3 -> 33.33 rounds to 33
	if roadmap.Progress.CompletionPercentage != 33 {
		t.Errorf("expected 33, got %d", roadmap.Progress.CompletionPercentage)
	}

	roadmap.Phases = PhaseList{{Topics: topics(true, true, false)}}
	roadmap.Recalculate(time.Now())

	// 2/3 -> 66.67 rounds to 67
	if roadmap.Progress.CompletionPercentage != 67 {
		t.Errorf("expected 67, got %d", roadmap.Progress.CompletionPercentage)
	}
}

func TestRoadmapRecalculateIdempotent(t *testing.T) {
	roadmap := Roadmap{
		Phases: PhaseList{{Topics: topics(true, false)}},
	}

	first := time.Now()
	roadmap.Recalculate(first)
	snapshot := roadmap.Progress

	second := first.Add(time.Second)
	roadmap.Recalculate(second)

	if roadmap.Progress != snapshot {
		t.Errorf("derived fields changed on unchanged record: %+v vs %+v", roadmap.Progress, snapshot)
	}
	if !roadmap.UpdatedAt.After(first) {
		t.Errorf("expected updatedAt to advance, got %v", roadmap.UpdatedAt)
	}
}

func TestRoadmapEnsureTopicIDs(t *testing.T) {
	roadmap := Roadmap{
		Phases: PhaseList{
			{Topics: []Topic{{TopicID: "keep-me"}, {Title: "added later"}}},
			{Topics: []Topic{{Title: "also new"}}},
		},
	}

	roadmap.EnsureTopicIDs()

	if roadmap.Phases[0].Topics[0].TopicID != "keep-me" {
		t.Errorf("existing id must survive, got %q", roadmap.Phases[0].Topics[0].TopicID)
	}

	first := roadmap.Phases[0].Topics[1].TopicID
	second := roadmap.Phases[1].Topics[0].TopicID
	if first == "" || second == "" {
		t.Fatal("topics added without an id must be minted one")
	}
	if first == second {
		t.Error("minted ids must be distinct")
	}

	// Minted topics must be addressable afterwards.
	if _, _, ok := roadmap.FindTopic(first); !ok {
		t.Errorf("expected FindTopic to resolve minted id %q", first)
	}
}

func TestRoadmapFindTopic(t *testing.T) {
	roadmap := Roadmap{
		Phases: PhaseList{
			{Topics: []Topic{{TopicID: "a"}, {TopicID: "b"}}},
			{Topics: []Topic{{TopicID: "c"}}},
		},
	}

	phaseIdx, topicIdx, ok := roadmap.FindTopic("c")
	if !ok || phaseIdx != 1 || topicIdx != 0 {
		t.Errorf("expected (1,0,true), got (%d,%d,%v)", phaseIdx, topicIdx, ok)
	}

	if _, _, ok := roadmap.FindTopic("missing"); ok {
		t.Error("expected lookup miss for unknown topic id")
	}
}
