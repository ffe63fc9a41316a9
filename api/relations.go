package api

import (
	"context"

	"github.com/Ghost835545/ScheduleMultipartiteGraph/school"
)

func subjectsOfGroup(ctx context.Context) ([]school.Subject, error) {

	id, err := urlId(ctx)
	if err != nil {
		return nil, err
	}

	subjects, err := GetServicer(ctx).SubjectsOfGroup(id)
	if err != nil {
		return nil, describeNotFound(err, "group", id)
	}

	return subjects, nil
}

func groupsOfSubject(ctx context.Context) ([]school.GroupStudents, error) {

	id, err := urlId(ctx)
	if err != nil {
		return nil, err
	}

	groups, err := GetServicer(ctx).GroupsOfSubject(id)
	if err != nil {
		return nil, describeNotFound(err, "subject", id)
	}

	return groups, nil
}
