package server

import (
	"html/template"
	"net/http"
)

// ============================================================================
// INDEX PAGE — Single self-contained dashboard page
// ============================================================================
// The page is static HTML + a little fetch glue; all numbers come from the
// JSON API so the engine stays the single source of truth.
// ============================================================================

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, map[string]interface{}{
		"Title": "Employee performance dashboard",
	}); err != nil {
		s.logger.Error().Err(err).Msg("render index")
	}
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: sans-serif; margin: 2rem; color: #1f2937; }
  h1 { margin-bottom: 0.25rem; }
  .muted { color: #6b7280; font-size: 0.9rem; }
  .filters { margin: 1rem 0; padding: 1rem; background: #f3f4f6; border-radius: 8px; }
  .filters label { margin-right: 1rem; }
  .kpis { display: flex; gap: 1.5rem; margin: 1rem 0; }
  .kpi { padding: 1rem; background: #eef2ff; border-radius: 8px; min-width: 9rem; }
  .kpi b { display: block; font-size: 1.5rem; }
  .charts { display: grid; grid-template-columns: 1fr 1fr; gap: 1.5rem; }
  .chart { padding: 1rem; border: 1px solid #e5e7eb; border-radius: 8px; }
  .bar-row { display: flex; align-items: center; gap: 0.5rem; margin: 2px 0; }
  .bar { background: #4f46e5; height: 14px; }
  .warning { padding: 1rem; background: #fef3c7; border-radius: 8px; }
  table { border-collapse: collapse; margin-top: 1rem; }
  th, td { border: 1px solid #e5e7eb; padding: 4px 8px; font-size: 0.85rem; }
  pre.conclusions { white-space: pre-wrap; background: #f9fafb; padding: 1rem; border-radius: 8px; }
</style>
</head>
<body>
<img src="/logo" alt="" height="60" onerror="this.remove()">
<h1>{{.Title}}</h1>
<p class="muted">Filter by gender, performance score range, and marital status; metrics and charts update over the filtered subset.</p>

<div class="filters" id="filters"></div>
<div id="content"></div>

<script>
async function init() {
  const s = await (await fetch('/api/summary')).json();
  const f = document.getElementById('filters');
  f.innerHTML =
    s.genders.map(g => '<label><input type="checkbox" name="gender" value="' + g + '" checked>' + g + '</label>').join('') +
    ' Score <input type="number" id="score_min" value="' + s.scoreMin + '" min="' + s.scoreMin + '" max="' + s.scoreMax + '">' +
    ' to <input type="number" id="score_max" value="' + s.scoreMax + '" min="' + s.scoreMin + '" max="' + s.scoreMax + '"> ' +
    s.maritalStatuses.map(m => '<label><input type="checkbox" name="marital_status" value="' + m + '" checked>' + m + '</label>').join('') +
    ' <button id="export">Download CSV</button>';
  f.addEventListener('change', refresh);
  document.getElementById('export').addEventListener('click', () => {
    window.location = '/export.csv?' + params();
  });
  refresh();
}

function params() {
  const p = new URLSearchParams();
  document.querySelectorAll('input[name=gender]:checked').forEach(el => p.append('gender', el.value));
  document.querySelectorAll('input[name=marital_status]:checked').forEach(el => p.append('marital_status', el.value));
  p.set('score_min', document.getElementById('score_min').value);
  p.set('score_max', document.getElementById('score_max').value);
  return p.toString();
}

function barChart(cfg) {
  if (!cfg || !cfg.series.length) return '';
  const data = cfg.series[0].data || [];
  const max = Math.max(...data.map(d => d.value), 1);
  return '<div class="chart"><h3>' + cfg.title + '</h3>' +
    data.map(d => '<div class="bar-row"><span style="width:8rem">' + d.label +
      '</span><div class="bar" style="width:' + (d.value / max * 240) + 'px"></div><span>' +
      d.value + '</span></div>').join('') + '</div>';
}

function scatterChart(cfg) {
  if (!cfg || !cfg.series.length) return '';
  const pts = cfg.series[0].points || [];
  const xs = pts.map(p => p.x), ys = pts.map(p => p.y);
  const xMax = Math.max(...xs, 1), yMax = Math.max(...ys, 1);
  return '<div class="chart"><h3>' + cfg.title + '</h3><svg width="280" height="180">' +
    pts.map(p => '<circle cx="' + (p.x / xMax * 260 + 10) + '" cy="' + (170 - p.y / yMax * 160) +
      '" r="3" fill="#4f46e5" fill-opacity="0.7"/>').join('') + '</svg></div>';
}

async function refresh() {
  const res = await (await fetch('/api/dashboard?' + params())).json();
  const el = document.getElementById('content');
  if (res.warning) {
    el.innerHTML = '<div class="warning">' + res.warning + '</div>';
    return;
  }
  const d = res.dashboard;
  const fmt = v => v == null ? 'n/a' : v.toFixed(2);
  el.innerHTML =
    '<div class="kpis">' +
      '<div class="kpi">Employees<b>' + d.metrics.filteredCount + ' / ' + d.metrics.totalCount + '</b></div>' +
      '<div class="kpi">Avg performance<b>' + fmt(d.metrics.meanPerformance) + '</b></div>' +
      '<div class="kpi">Avg satisfaction<b>' + fmt(d.metrics.meanSatisfaction) + '</b></div>' +
      '<div class="kpi">Avg absences<b>' + fmt(d.metrics.meanAbsences) + '</b></div>' +
    '</div>' +
    '<div class="charts">' +
      barChart(d.charts.scoreDistribution) +
      barChart(d.charts.hoursByGender) +
      scatterChart(d.charts.ageSalary) +
      barChart(d.charts.hoursByScore) +
    '</div>' +
    '<h2>Conclusions</h2><pre class="conclusions">' + d.conclusions.text + '</pre>' +
    '<h2>' + d.detail.title + '</h2>' + detailTable(d.detail);
}

function detailTable(t) {
  return '<table><tr>' + t.columns.map(c => '<th>' + c.label + '</th>').join('') + '</tr>' +
    t.rows.map(r => '<tr>' + r.map(c => '<td>' + c + '</td>').join('') + '</tr>').join('') + '</table>';
}

init();
</script>
</body>
</html>
`
