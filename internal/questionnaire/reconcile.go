package questionnaire

import (
	"fmt"
	"reflect"
	"sort"
)

// reconcile stitches the two traversal result sets for one application into a
// single nested record. Answered rows carry app, q and ans columns; unanswered
// rows carry app and q. The sets are disjoint by construction, which is
// checked here rather than trusted.
func reconcile(applicationUUID string, answered, unanswered []Row) (Application, error) {
	if len(answered) == 0 && len(unanswered) == 0 {
		// An application with zero questions is indistinguishable from a
		// missing one under this traversal; both report not found.
		return Application{}, &ApplicationNotFoundError{UUID: applicationUUID}
	}

	appProps, err := applicationProjection(applicationUUID, answered, unanswered)
	if err != nil {
		return Application{}, err
	}
	app, err := applicationFromProps(appProps)
	if err != nil {
		return Application{}, err
	}

	seen := make(map[string]struct{}, len(answered)+len(unanswered))
	app.Questions = make([]Question, 0, len(answered)+len(unanswered))

	for _, row := range answered {
		q, err := rowQuestion(row, seen)
		if err != nil {
			return Application{}, err
		}
		ansProps, err := nodeColumn(row, "ans")
		if err != nil {
			return Application{}, err
		}
		ans, err := answerFromProps(ansProps)
		if err != nil {
			return Application{}, err
		}
		q.Answer = &ans
		app.Questions = append(app.Questions, q)
	}
	for _, row := range unanswered {
		q, err := rowQuestion(row, seen)
		if err != nil {
			return Application{}, err
		}
		app.Questions = append(app.Questions, q)
	}

	// The baseline sequence is answered rows then unanswered rows. The stable
	// sort makes section ordering an explicit contract while leaving that
	// baseline intact between equal order values.
	sort.SliceStable(app.Questions, func(i, j int) bool {
		return app.Questions[i].Order < app.Questions[j].Order
	})
	return app, nil
}

func rowQuestion(row Row, seen map[string]struct{}) (Question, error) {
	props, err := nodeColumn(row, "q")
	if err != nil {
		return Question{}, err
	}
	q, err := questionFromProps(props)
	if err != nil {
		return Question{}, err
	}
	if _, dup := seen[q.UUID]; dup {
		return Question{}, &InconsistentResultError{
			Reason: fmt.Sprintf("question %s appears in more than one traversal row", q.UUID),
		}
	}
	seen[q.UUID] = struct{}{}
	return q, nil
}

// applicationProjection picks the app column from whichever set is non-empty.
// Every projection present must agree with the requested uuid, and when both
// sets carry one they must be property-for-property identical; both traversals
// matched the same node, so any disagreement means the store returned garbage.
func applicationProjection(applicationUUID string, answered, unanswered []Row) (map[string]any, error) {
	projections := make([]map[string]any, 0, 2)
	for _, set := range [][]Row{answered, unanswered} {
		if len(set) == 0 {
			continue
		}
		props, err := nodeColumn(set[0], "app")
		if err != nil {
			return nil, err
		}
		if got, _ := props["uuid"].(string); got != applicationUUID {
			return nil, &InconsistentResultError{
				Reason: fmt.Sprintf("traversal returned application %q for requested %q", got, applicationUUID),
			}
		}
		projections = append(projections, props)
	}
	if len(projections) == 2 && !reflect.DeepEqual(projections[0], projections[1]) {
		return nil, &InconsistentResultError{
			Reason: fmt.Sprintf("traversals disagree on the projection of application %q", applicationUUID),
		}
	}
	return projections[0], nil
}

func nodeColumn(row Row, key string) (map[string]any, error) {
	props, ok := row[key].(map[string]any)
	if !ok {
		return nil, &InconsistentResultError{Reason: "row has no node projection in column " + key}
	}
	return props, nil
}
